package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saralbooks/ledger_backend/models"
	"github.com/shopspring/decimal"
)

func TestCreateInventoryItemValidatesSpecsByCategory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Bath Soap",
		Category: models.ItemCategoryFMCG,
		Quantity: decimalPtr(decimal.NewFromInt(10)),
		Rate:     decimalPtr(decimal.NewFromInt(30)),
		Specs:    models.SpecsDocument{"cartons": 2},
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for incomplete FMCG specs, got %v", err)
	}

	item, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Bath Soap",
		Category: models.ItemCategoryFMCG,
		Quantity: decimalPtr(decimal.NewFromInt(10)),
		Rate:     decimalPtr(decimal.NewFromInt(30)),
		Specs:    models.SpecsDocument{"cartons": 2, "items_per_carton": 12},
	})
	if err != nil {
		t.Fatalf("create with full FMCG specs: %v", err)
	}

	got, err := models.GetInventoryItem(ctx, db, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Specs["items_per_carton"] == nil {
		t.Fatalf("specs document not round-tripped: %#v", got.Specs)
	}
}

func TestCreateInventoryItemRequiresQuantityAndRate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Ghost Item",
		Category: models.ItemCategoryOther,
		Rate:     decimalPtr(decimal.NewFromInt(10)),
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for missing quantity, got %v", err)
	}

	_, err = models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Ghost Item",
		Category: models.ItemCategoryOther,
		Quantity: decimalPtr(decimal.NewFromInt(10)),
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for missing rate, got %v", err)
	}

	// An explicit zero is not a missing field: a new catalog entry may open
	// with no stock on hand.
	item, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "New Line Biscuits",
		Category: models.ItemCategoryOther,
		Quantity: decimalPtr(decimal.Zero),
		Rate:     decimalPtr(decimal.NewFromInt(10)),
	})
	if err != nil {
		t.Fatalf("zero opening quantity should be accepted: %v", err)
	}
	if !item.Quantity.IsZero() {
		t.Fatalf("expected zero opening quantity, got %s", item.Quantity)
	}
}

func TestCreateInventoryItemRejectsUnknownCategory(t *testing.T) {
	db := openTestDB(t)

	_, err := models.CreateInventoryItem(context.Background(), db, &models.NewInventoryItem{
		ItemName: "Mystery",
		Category: models.ItemCategory("Stationery"),
		Quantity: decimalPtr(decimal.NewFromInt(1)),
		Rate:     decimalPtr(decimal.NewFromInt(1)),
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateInventoryItemOtherCategoryAcceptsOpenSpecs(t *testing.T) {
	db := openTestDB(t)

	_, err := models.CreateInventoryItem(context.Background(), db, &models.NewInventoryItem{
		ItemName: "Loose Jaggery",
		Category: models.ItemCategoryOther,
		Quantity: decimalPtr(decimal.NewFromInt(5)),
		Rate:     decimalPtr(decimal.NewFromInt(60)),
		Specs:    models.SpecsDocument{"origin": "Kolhapur"},
	})
	if err != nil {
		t.Fatalf("other category should accept any specs: %v", err)
	}
}

func TestDeleteInventoryItemDetachesPurchaseRecords(t *testing.T) {
	db := openTestDB(t)
	engine := newTestEngine(t, db)
	ctx := context.Background()

	item := createTestItem(t, db, "Widget", 100, "10.00")
	purchase, err := models.RecordPurchase(ctx, engine, &models.NewPurchase{
		ItemId:   item.ID,
		Quantity: decimal.NewFromInt(50),
		Rate:     decimal.NewFromInt(9),
	})
	if err != nil {
		t.Fatalf("record purchase: %v", err)
	}

	if _, err := models.DeleteInventoryItem(ctx, db, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	var got models.PurchaseRecord
	if err := db.First(&got, purchase.ID).Error; err != nil {
		t.Fatalf("purchase record must survive item deletion: %v", err)
	}
	if got.ItemId != nil {
		t.Fatalf("purchase record should be detached, still references item %d", *got.ItemId)
	}

	if _, err := models.GetInventoryItem(ctx, db, item.ID); !errors.Is(err, models.ErrItemNotFound) {
		t.Fatalf("expected item gone, got %v", err)
	}
}
