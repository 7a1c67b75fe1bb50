package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	rules "github.com/weldcell/sparetrack/pkg/domain/services"
	"github.com/weldcell/sparetrack/pkg/infrastructure/repositories/memory"
	fixtures "github.com/weldcell/sparetrack/pkg/infrastructure/testing"
)

var testNow = time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)

type fixtureRepos struct {
	parts    *memory.PartRepository
	reorders *memory.ReorderRepository
	assets   *memory.AssetRepository
	support  *memory.SupportRepository
}

func newTestReorderService(t *testing.T) (*ReorderService, *fixtureRepos) {
	t.Helper()
	partRepo, reorderRepo, assetRepo, supportRepo := fixtures.BuildWeldShopTestData()

	machine := rules.NewReorderMachine(0)
	service := NewReorderService(partRepo, reorderRepo, machine, nil, nil, func() time.Time { return testNow })
	return service, &fixtureRepos{partRepo, reorderRepo, assetRepo, supportRepo}
}

func TestCreateReorderDefaultsToReorderQuantity(t *testing.T) {
	service, repos := newTestReorderService(t)

	reorder, err := service.CreateReorder("part-shank", 0, nil, "")
	require.NoError(t, err)

	assert.Equal(t, entities.Pending, reorder.Status)
	assert.Equal(t, entities.Quantity(10), reorder.Quantity)
	assert.True(t, reorder.TotalPrice.Equal(decimal.RequireFromString("380.00")),
		"TotalPrice = %s, want 380.00", reorder.TotalPrice)
	assert.Equal(t, "SHK-F-201", reorder.PartNumber)

	// The part now has a reorder in flight and classifies on-order.
	part, err := repos.parts.GetPart("part-shank")
	require.NoError(t, err)
	assert.Equal(t, entities.OnOrder, part.Status)
}

func TestCreateReorderRejectsDuplicateOpen(t *testing.T) {
	service, _ := newTestReorderService(t)

	_, err := service.CreateReorder("part-shank", 10, nil, "")
	require.NoError(t, err)

	_, err = service.CreateReorder("part-shank", 5, nil, "")
	assert.ErrorIs(t, err, rules.ErrDuplicateOpenReorder)
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	service, _ := newTestReorderService(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateReorder("part-shank", 10, nil, "")
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, rules.ErrDuplicateOpenReorder):
			duplicates++
		default:
			t.Fatalf("unexpected error from concurrent create: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one create should pass the guard")
	assert.Equal(t, attempts-1, duplicates)
}

func TestCreateReorderUnknownPart(t *testing.T) {
	service, _ := newTestReorderService(t)

	_, err := service.CreateReorder("part-nope", 10, nil, "")
	assert.ErrorIs(t, err, rules.ErrNotFound)
}

func TestApproveRejectsExpiredQuoteDespiteAttestation(t *testing.T) {
	service, _ := newTestReorderService(t)

	expired := testNow.AddDate(0, 0, -3)
	reorder, err := service.CreateReorder("part-shank", 10, &QuoteDetails{
		Price:      decimal.RequireFromString("36.00"),
		ValidUntil: expired,
	}, "")
	require.NoError(t, err)

	_, err = service.Approve(reorder.ID, "PO-1", true, true)
	assert.ErrorIs(t, err, rules.ErrInvalidQuote)

	// The reorder must be untouched by the failed approval.
	stored, err := service.GetReorder(reorder.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Pending, stored.Status)
	assert.Empty(t, stored.PurchaseOrderNumber)
}

func TestApproveAcceptsQuoteExpiringToday(t *testing.T) {
	service, _ := newTestReorderService(t)

	today := testNow
	reorder, err := service.CreateReorder("part-shank", 10, &QuoteDetails{
		Price:      decimal.RequireFromString("36.00"),
		ValidUntil: today,
	}, "")
	require.NoError(t, err)

	approved, err := service.Approve(reorder.ID, "PO-1", true, true)
	require.NoError(t, err)
	assert.Equal(t, entities.Approved, approved.Status)
}

func TestFullLifecycleReplenishesStock(t *testing.T) {
	service, repos := newTestReorderService(t)

	reorder, err := service.CreateReorder("part-shank", 0, nil, "")
	require.NoError(t, err)

	_, err = service.Approve(reorder.ID, "PO-2025-0042", true, true)
	require.NoError(t, err)

	placed, err := service.PlaceOrder(reorder.ID)
	require.NoError(t, err)
	require.NotNil(t, placed.ExpectedDelivery)
	wantDelivery := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC) // 21 day lead time
	assert.True(t, placed.ExpectedDelivery.Equal(wantDelivery),
		"ExpectedDelivery = %v, want %v", placed.ExpectedDelivery, wantDelivery)

	part, err := repos.parts.GetPart("part-shank")
	require.NoError(t, err)
	require.NotNil(t, part.LastOrdered)

	_, err = service.MarkInTransit(reorder.ID)
	require.NoError(t, err)

	delivered, err := service.Receive(reorder.ID, "INV-7781", "GRN-0093")
	require.NoError(t, err)
	assert.Equal(t, entities.Delivered, delivered.Status)
	assert.Equal(t, entities.Invoiced, delivered.Payment)

	// Stock 4 + 10 = 14, above the reorder point of 5, no open reorder left.
	part, err = repos.parts.GetPart("part-shank")
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(14), part.StockQuantity)
	assert.Equal(t, entities.InStock, part.Status)
	require.NotNil(t, part.LastRestocked)

	open, err := repos.reorders.GetOpenReordersForPart("part-shank")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestPlaceOrderFallsBackWhenLeadTimeUnknown(t *testing.T) {
	service, _ := newTestReorderService(t)

	// The transformer part has no lead time on record.
	reorder, err := service.CreateReorder("part-transformer", 2, nil, "")
	require.NoError(t, err)
	_, err = service.Approve(reorder.ID, "PO-9", true, true)
	require.NoError(t, err)

	placed, err := service.PlaceOrder(reorder.ID)
	require.NoError(t, err)
	require.NotNil(t, placed.ExpectedDelivery)

	want := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC) // 30 day fallback
	assert.True(t, placed.ExpectedDelivery.Equal(want),
		"ExpectedDelivery = %v, want fallback %v", placed.ExpectedDelivery, want)
}

func TestRejectRestoresStockClassification(t *testing.T) {
	service, repos := newTestReorderService(t)

	reorder, err := service.CreateReorder("part-shank", 10, nil, "")
	require.NoError(t, err)

	part, err := repos.parts.GetPart("part-shank")
	require.NoError(t, err)
	require.Equal(t, entities.OnOrder, part.Status)

	_, err = service.Reject(reorder.ID)
	require.NoError(t, err)

	// With the reorder cancelled the part classifies on quantities again.
	part, err = repos.parts.GetPart("part-shank")
	require.NoError(t, err)
	assert.Equal(t, entities.LowStock, part.Status)
}

func TestCancelAfterApproval(t *testing.T) {
	service, _ := newTestReorderService(t)

	reorder, err := service.CreateReorder("part-shank", 10, nil, "")
	require.NoError(t, err)
	_, err = service.Approve(reorder.ID, "PO-1", true, true)
	require.NoError(t, err)

	cancelled, err := service.Cancel(reorder.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Cancelled, cancelled.Status)

	// Terminal: nothing else applies.
	_, err = service.PlaceOrder(reorder.ID)
	assert.ErrorIs(t, err, rules.ErrInvalidTransition)
}

func TestConcurrentApproveSingleWinner(t *testing.T) {
	service, _ := newTestReorderService(t)

	reorder, err := service.CreateReorder("part-shank", 10, nil, "")
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Approve(reorder.ID, "PO-RACE", true, true)
		}(i)
	}
	wg.Wait()

	var successes, invalid int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, rules.ErrInvalidTransition):
			invalid++
		default:
			t.Fatalf("unexpected error from concurrent approve: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one approve should win")
	assert.Equal(t, attempts-1, invalid, "losers should observe invalid transition")

	stored, err := service.GetReorder(reorder.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.Approved, stored.Status)
}

func TestIsQuoteValid(t *testing.T) {
	service, _ := newTestReorderService(t)

	noQuote, err := service.CreateReorder("part-shank", 10, nil, "")
	require.NoError(t, err)
	valid, err := service.IsQuoteValid(noQuote.ID)
	require.NoError(t, err)
	assert.False(t, valid, "a reorder without a quote validity date is never valid")

	withQuote, err := service.CreateReorder("part-transformer", 2, &QuoteDetails{
		Price:      decimal.RequireFromString("1200.00"),
		ValidUntil: testNow.AddDate(0, 0, 7),
	}, "")
	require.NoError(t, err)
	valid, err = service.IsQuoteValid(withQuote.ID)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestClassifyPartQuery(t *testing.T) {
	service, _ := newTestReorderService(t)

	status, err := service.ClassifyPart("part-cap-tip")
	require.NoError(t, err)
	assert.Equal(t, entities.InStock, status)

	status, err = service.ClassifyPart("part-transformer")
	require.NoError(t, err)
	assert.Equal(t, entities.OutOfStock, status)

	_, err = service.ClassifyPart("part-nope")
	assert.ErrorIs(t, err, rules.ErrNotFound)
}
