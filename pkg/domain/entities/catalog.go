package entities

import "fmt"

// Catalog holds the fixed enumerations consumed from external data: the part
// type categories and the robot makes parts are compatible with. The engine
// never hardcodes these lists.
type Catalog struct {
	partTypes  map[PartType]struct{}
	robotMakes map[string]struct{}
}

// NewCatalog builds a catalog from the loaded enumerations.
func NewCatalog(partTypes []PartType, robotMakes []string) *Catalog {
	c := &Catalog{
		partTypes:  make(map[PartType]struct{}, len(partTypes)),
		robotMakes: make(map[string]struct{}, len(robotMakes)),
	}
	for _, pt := range partTypes {
		c.partTypes[pt] = struct{}{}
	}
	for _, rm := range robotMakes {
		c.robotMakes[rm] = struct{}{}
	}
	return c
}

// HasPartType reports whether the part type is in the catalog.
func (c *Catalog) HasPartType(pt PartType) bool {
	_, ok := c.partTypes[pt]
	return ok
}

// HasRobotMake reports whether the robot make is in the compatibility list.
func (c *Catalog) HasRobotMake(make string) bool {
	_, ok := c.robotMakes[make]
	return ok
}

// ValidatePartType returns an error naming the unknown part type.
func (c *Catalog) ValidatePartType(pt PartType) error {
	if !c.HasPartType(pt) {
		return fmt.Errorf("part type %q is not in the catalog", pt)
	}
	return nil
}

// PartTypeCount returns the number of catalogued part types.
func (c *Catalog) PartTypeCount() int {
	return len(c.partTypes)
}
