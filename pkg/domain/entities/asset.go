package entities

import (
	"fmt"
	"time"
)

// AssetID uniquely identifies a machine asset
type AssetID string

// AssetStatus represents the operational status of an asset
type AssetStatus int

const (
	Operational AssetStatus = iota
	Maintenance
	Repair
	Retired
)

// String method for AssetStatus enum
func (s AssetStatus) String() string {
	switch s {
	case Operational:
		return "operational"
	case Maintenance:
		return "maintenance"
	case Repair:
		return "repair"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}

// ParseAssetStatus parses the string form used in fixture files
func ParseAssetStatus(s string) (AssetStatus, error) {
	switch s {
	case "operational":
		return Operational, nil
	case "maintenance":
		return Maintenance, nil
	case "repair":
		return Repair, nil
	case "retired":
		return Retired, nil
	default:
		return Operational, fmt.Errorf("unknown asset status %q", s)
	}
}

// AssetSparePart references a part installed on an asset
type AssetSparePart struct {
	ID           string
	PartID       PartID
	PartName     string
	PartType     PartType
	Quantity     Quantity
	LastReplaced *time.Time
	Notes        string
}

// Asset represents a machine with its installed spare parts. The reorder
// engine only reads assets; it never mutates them.
type Asset struct {
	ID              AssetID
	Name            string
	Model           string
	Manufacturer    string
	SerialNumber    string
	Location        string
	RobotMake       string
	Status          AssetStatus
	InstallDate     time.Time
	LastMaintenance time.Time
	NextMaintenance time.Time
	Notes           string
	SpareParts      []AssetSparePart
}
