package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/services"
)

// Loader handles loading spare part, asset, and reorder data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadParts loads spare parts from a CSV file. The status column is absent on
// purpose: stock status is derived, never read from external data.
func (l *Loader) LoadParts(filename string) ([]*entities.SparePart, error) {
	records, err := readAll(filename, "parts")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"id", "name", "part_number", "description", "part_type", "robot_make",
		"manufacturer", "supplier", "unit_price", "stock_quantity",
		"min_stock_level", "reorder_point", "reorder_quantity", "location",
		"lead_time_days", "last_ordered", "last_restocked", "notes",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("parts CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var parts []*entities.SparePart
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("parts CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		part, err := parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}

		parts = append(parts, part)
	}

	return parts, nil
}

// LoadAssets loads machine assets from a CSV file
func (l *Loader) LoadAssets(filename string) ([]*entities.Asset, error) {
	records, err := readAll(filename, "assets")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"id", "name", "model", "manufacturer", "serial_number", "location",
		"robot_make", "status", "install_date", "last_maintenance",
		"next_maintenance", "notes",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("assets CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var assets []*entities.Asset
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("assets CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		asset, err := parseAsset(record)
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}

		assets = append(assets, asset)
	}

	return assets, nil
}

// LoadReorders loads reorders from a CSV file. Every row is checked against
// the total price invariant; a row whose total does not equal quantity times
// unit price is rejected rather than silently recomputed.
func (l *Loader) LoadReorders(filename string) ([]*entities.Reorder, error) {
	records, err := readAll(filename, "reorders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"id", "part_id", "part_name", "part_number", "part_type", "supplier",
		"quantity", "unit_price", "total_price", "quoted_price",
		"quote_validity", "status", "date_requested", "date_approved",
		"date_ordered", "expected_delivery", "date_delivered",
		"purchase_order_number", "invoice_number", "grn_number",
		"payment_status", "notes",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("reorders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var reorders []*entities.Reorder
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("reorders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		reorder, err := parseReorder(record)
		if err != nil {
			return nil, fmt.Errorf("reorders CSV row %d: %w", i+2, err)
		}
		if err := reorder.CheckTotalPrice(); err != nil {
			return nil, fmt.Errorf("reorders CSV row %d: %w", i+2, err)
		}

		reorders = append(reorders, reorder)
	}

	return reorders, nil
}

// LoadCatalog loads the part type and robot make catalogs from their
// single-column CSV files
func (l *Loader) LoadCatalog(partTypesFile, robotMakesFile string) (*entities.Catalog, error) {
	partTypes, err := loadSingleColumn(partTypesFile, "part_type")
	if err != nil {
		return nil, err
	}
	robotMakes, err := loadSingleColumn(robotMakesFile, "robot_make")
	if err != nil {
		return nil, err
	}

	types := make([]entities.PartType, len(partTypes))
	for i, t := range partTypes {
		types[i] = entities.PartType(t)
	}
	return entities.NewCatalog(types, robotMakes), nil
}

// ApplyStockStatus derives every part's stock status from its quantities and
// the loaded reorder set. Call after LoadParts and LoadReorders.
func ApplyStockStatus(parts []*entities.SparePart, reorders []*entities.Reorder) {
	openByPart := make(map[entities.PartID]bool)
	for _, reorder := range reorders {
		if reorder.IsOpen() {
			openByPart[reorder.PartID] = true
		}
	}
	for _, part := range parts {
		part.Status = services.ClassifyStock(part.StockQuantity, part.ReorderPoint, openByPart[part.ID])
	}
}

// Helper functions for parsing CSV records

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func loadSingleColumn(filename, column string) ([]string, error) {
	records, err := readAll(filename, column)
	if err != nil {
		return nil, err
	}
	if !validateHeader(records[0], []string{column}) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: [%s], Got: %v", column, column, records[0])
	}

	var values []string
	for i, record := range records[1:] {
		value := strings.TrimSpace(record[0])
		if value == "" {
			return nil, fmt.Errorf("%s CSV row %d: empty value", column, i+2)
		}
		values = append(values, value)
	}
	return values, nil
}

func parsePart(record []string) (*entities.SparePart, error) {
	unitPrice, err := decimal.NewFromString(record[8])
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price: %s", record[8])
	}

	stockQuantity, err := parseQuantity("stock_quantity", record[9])
	if err != nil {
		return nil, err
	}
	minStockLevel, err := parseQuantity("min_stock_level", record[10])
	if err != nil {
		return nil, err
	}
	reorderPoint, err := parseQuantity("reorder_point", record[11])
	if err != nil {
		return nil, err
	}
	reorderQuantity, err := parseQuantity("reorder_quantity", record[12])
	if err != nil {
		return nil, err
	}

	leadTimeDays, err := strconv.Atoi(record[14])
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[14])
	}

	part, err := entities.NewSparePart(
		entities.PartID(record[0]),
		record[1],
		record[2],
		entities.PartType(record[4]),
		unitPrice,
		stockQuantity, minStockLevel, reorderPoint, reorderQuantity,
		leadTimeDays,
	)
	if err != nil {
		return nil, err
	}

	part.Description = record[3]
	part.RobotMake = record[5]
	part.Manufacturer = record[6]
	part.Supplier = record[7]
	part.Location = record[13]
	part.Notes = record[17]

	if part.LastOrdered, err = parseOptionalDate("last_ordered", record[15]); err != nil {
		return nil, err
	}
	if part.LastRestocked, err = parseOptionalDate("last_restocked", record[16]); err != nil {
		return nil, err
	}

	return part, nil
}

func parseAsset(record []string) (*entities.Asset, error) {
	status, err := entities.ParseAssetStatus(record[7])
	if err != nil {
		return nil, err
	}

	installDate, err := parseDate("install_date", record[8])
	if err != nil {
		return nil, err
	}
	lastMaintenance, err := parseDate("last_maintenance", record[9])
	if err != nil {
		return nil, err
	}
	nextMaintenance, err := parseDate("next_maintenance", record[10])
	if err != nil {
		return nil, err
	}

	return &entities.Asset{
		ID:              entities.AssetID(record[0]),
		Name:            record[1],
		Model:           record[2],
		Manufacturer:    record[3],
		SerialNumber:    record[4],
		Location:        record[5],
		RobotMake:       record[6],
		Status:          status,
		InstallDate:     installDate,
		LastMaintenance: lastMaintenance,
		NextMaintenance: nextMaintenance,
		Notes:           record[11],
	}, nil
}

func parseReorder(record []string) (*entities.Reorder, error) {
	quantity, err := parseQuantity("quantity", record[6])
	if err != nil {
		return nil, err
	}

	unitPrice, err := decimal.NewFromString(record[7])
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price: %s", record[7])
	}
	totalPrice, err := decimal.NewFromString(record[8])
	if err != nil {
		return nil, fmt.Errorf("invalid total_price: %s", record[8])
	}

	status, err := entities.ParseReorderStatus(record[11])
	if err != nil {
		return nil, err
	}

	dateRequested, err := parseDate("date_requested", record[12])
	if err != nil {
		return nil, err
	}

	payment, err := parsePaymentStatus(record[20])
	if err != nil {
		return nil, err
	}

	reorder := &entities.Reorder{
		ID:                  entities.ReorderID(record[0]),
		PartID:              entities.PartID(record[1]),
		PartName:            record[2],
		PartNumber:          record[3],
		PartType:            entities.PartType(record[4]),
		Supplier:            record[5],
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		TotalPrice:          totalPrice,
		Status:              status,
		DateRequested:       dateRequested,
		PurchaseOrderNumber: record[17],
		InvoiceNumber:       record[18],
		GRNNumber:           record[19],
		Payment:             payment,
		Notes:               record[21],
	}

	if reorder.QuotedPrice, err = parseOptionalDecimal("quoted_price", record[9]); err != nil {
		return nil, err
	}
	if reorder.QuoteValidity, err = parseOptionalDate("quote_validity", record[10]); err != nil {
		return nil, err
	}
	if reorder.DateApproved, err = parseOptionalDate("date_approved", record[13]); err != nil {
		return nil, err
	}
	if reorder.DateOrdered, err = parseOptionalDate("date_ordered", record[14]); err != nil {
		return nil, err
	}
	if reorder.ExpectedDelivery, err = parseOptionalDate("expected_delivery", record[15]); err != nil {
		return nil, err
	}
	if reorder.DateDelivered, err = parseOptionalDate("date_delivered", record[16]); err != nil {
		return nil, err
	}

	return reorder, nil
}

func parseQuantity(field, value string) (entities.Quantity, error) {
	quantity, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", field, value)
	}
	return entities.Quantity(quantity), nil
}

func parseOptionalDecimal(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", field, value)
	}
	return &parsed, nil
}

func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format: %s (expected YYYY-MM-DD)", field, value)
	}
	return date, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	date, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parsePaymentStatus(s string) (entities.PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unpaid":
		return entities.Unpaid, nil
	case "invoiced":
		return entities.Invoiced, nil
	case "paid":
		return entities.Paid, nil
	default:
		return entities.Unpaid, fmt.Errorf("invalid payment_status: %s (expected: unpaid, invoiced, or paid)", s)
	}
}
