package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const partsHeader = "id,name,part_number,description,part_type,robot_make,manufacturer,supplier,unit_price,stock_quantity,min_stock_level,reorder_point,reorder_quantity,location,lead_time_days,last_ordered,last_restocked,notes\n"

const reordersHeader = "id,part_id,part_name,part_number,part_type,supplier,quantity,unit_price,total_price,quoted_price,quote_validity,status,date_requested,date_approved,date_ordered,expected_delivery,date_delivered,purchase_order_number,invoice_number,grn_number,payment_status,notes\n"

func TestLoadParts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "parts.csv", partsHeader+
		"part-1,Cap Tip,CT-100,Standard cap tip,cap-tip,FANUC,Obara,WeldSupply,4.50,120,40,50,200,Rack A1,7,2025-07-10,,\n"+
		"part-2,Fixed Shank,SHK-201,,shank-fixed,ABB,Obara,WeldSupply,38.00,4,2,5,10,Rack B2,21,,,worn threads\n")

	loader := NewLoader()
	parts, err := loader.LoadParts(path)
	if err != nil {
		t.Fatalf("LoadParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}

	first := parts[0]
	if first.ID != "part-1" || first.PartType != "cap-tip" {
		t.Errorf("unexpected first part: %+v", first)
	}
	if first.LastOrdered == nil {
		t.Error("last_ordered not parsed")
	}
	if first.LastRestocked != nil {
		t.Error("empty last_restocked should parse to nil")
	}
	if parts[1].Notes != "worn threads" {
		t.Errorf("notes = %q", parts[1].Notes)
	}
}

func TestLoadPartsHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "parts.csv",
		"id,name\npart-1,Cap Tip\n")

	loader := NewLoader()
	_, err := loader.LoadParts(path)
	if err == nil || !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("error = %v, want header mismatch", err)
	}
}

func TestLoadReordersChecksTotalPrice(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.csv", reordersHeader+
		"reorder-1,part-1,Cap Tip,CT-100,cap-tip,WeldSupply,200,4.50,900.00,,,delivered,2025-07-02,2025-07-03,2025-07-04,2025-07-11,2025-07-10,PO-27,INV-5521,GRN-0071,invoiced,\n")

	loader := NewLoader()
	reorders, err := loader.LoadReorders(good)
	if err != nil {
		t.Fatalf("LoadReorders failed: %v", err)
	}
	if len(reorders) != 1 {
		t.Fatalf("got %d reorders, want 1", len(reorders))
	}
	reorder := reorders[0]
	if reorder.Status != entities.Delivered {
		t.Errorf("status = %v, want delivered", reorder.Status)
	}
	if reorder.Payment != entities.Invoiced {
		t.Errorf("payment = %v, want invoiced", reorder.Payment)
	}
	if reorder.DateDelivered == nil || reorder.ExpectedDelivery == nil {
		t.Error("optional dates not parsed")
	}

	// 200 x 4.50 is 900.00, not 850.00: the row must be rejected.
	bad := writeFile(t, dir, "bad.csv", reordersHeader+
		"reorder-2,part-1,Cap Tip,CT-100,cap-tip,WeldSupply,200,4.50,850.00,,,pending,2025-08-01,,,,,,,,unpaid,\n")
	_, err = loader.LoadReorders(bad)
	if err == nil || !strings.Contains(err.Error(), "total price") {
		t.Errorf("error = %v, want total price invariant violation", err)
	}
}

func TestLoadReordersRejectsUnknownStatus(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reorders.csv", reordersHeader+
		"reorder-1,part-1,Cap Tip,CT-100,cap-tip,WeldSupply,10,4.50,45.00,,,backordered,2025-08-01,,,,,,,,unpaid,\n")

	loader := NewLoader()
	if _, err := loader.LoadReorders(path); err == nil {
		t.Error("expected error for unknown reorder status")
	}
}

func TestLoadReordersParsesQuote(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reorders.csv", reordersHeader+
		"reorder-1,part-1,Cap Tip,CT-100,cap-tip,WeldSupply,10,4.50,45.00,4.20,2025-09-15,pending,2025-08-20,,,,,,,,unpaid,\n"+
		"reorder-2,part-1,Cap Tip,CT-100,cap-tip,WeldSupply,5,4.50,22.50,,,pending,2025-08-21,,,,,,,,unpaid,\n")

	loader := NewLoader()
	reorders, err := loader.LoadReorders(path)
	if err != nil {
		t.Fatalf("LoadReorders failed: %v", err)
	}
	if len(reorders) != 2 {
		t.Fatalf("got %d reorders, want 2", len(reorders))
	}

	quoted := reorders[0]
	if quoted.QuotedPrice == nil || !quoted.QuotedPrice.Equal(decimal.RequireFromString("4.20")) {
		t.Errorf("QuotedPrice = %v, want 4.20", quoted.QuotedPrice)
	}
	if quoted.QuoteValidity == nil {
		t.Fatal("quote_validity not parsed")
	}
	want := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	if !quoted.QuoteValidity.Equal(want) {
		t.Errorf("QuoteValidity = %v, want %v", quoted.QuoteValidity, want)
	}

	// Blank quote columns stay nil, keeping the quote absent rather than zero.
	unquoted := reorders[1]
	if unquoted.QuotedPrice != nil || unquoted.QuoteValidity != nil {
		t.Errorf("expected nil quote fields, got %v / %v", unquoted.QuotedPrice, unquoted.QuoteValidity)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	typesPath := writeFile(t, dir, "part_types.csv", "part_type\ncap-tip\nshank-fixed\ntransformer\n")
	makesPath := writeFile(t, dir, "robot_makes.csv", "robot_make\nFANUC\nABB\n")

	loader := NewLoader()
	catalog, err := loader.LoadCatalog(typesPath, makesPath)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if catalog.PartTypeCount() != 3 {
		t.Errorf("PartTypeCount = %d, want 3", catalog.PartTypeCount())
	}
	if !catalog.HasPartType("cap-tip") || catalog.HasPartType("gun-arm") {
		t.Error("part type membership wrong")
	}
	if !catalog.HasRobotMake("FANUC") || catalog.HasRobotMake("KUKA") {
		t.Error("robot make membership wrong")
	}
	if err := catalog.ValidatePartType("widget"); err == nil {
		t.Error("expected validation error for unknown part type")
	}
}

func TestApplyStockStatus(t *testing.T) {
	parts := []*entities.SparePart{
		{ID: "part-1", StockQuantity: 100, ReorderPoint: 50},
		{ID: "part-2", StockQuantity: 0, ReorderPoint: 5},
		{ID: "part-3", StockQuantity: 3, ReorderPoint: 5},
	}
	reorders := []*entities.Reorder{
		{ID: "r1", PartID: "part-2", Status: entities.Ordered},
		{ID: "r2", PartID: "part-3", Status: entities.Delivered},
	}

	ApplyStockStatus(parts, reorders)

	if parts[0].Status != entities.InStock {
		t.Errorf("part-1 status = %v, want in-stock", parts[0].Status)
	}
	// An in-flight reorder overrides the empty shelf.
	if parts[1].Status != entities.OnOrder {
		t.Errorf("part-2 status = %v, want on-order", parts[1].Status)
	}
	// A delivered reorder does not count as open.
	if parts[2].Status != entities.LowStock {
		t.Errorf("part-3 status = %v, want low-stock", parts[2].Status)
	}
}
