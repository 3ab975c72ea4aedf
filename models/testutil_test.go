package models_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/saralbooks/ledger_backend/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.MigrateTable(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestEngine(t *testing.T, db *gorm.DB) *models.StockMutationEngine {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return models.NewStockMutationEngine(db, log)
}

func createTestItem(t *testing.T, db *gorm.DB, name string, quantity int64, rate string) *models.InventoryItem {
	t.Helper()
	r, err := decimal.NewFromString(rate)
	if err != nil {
		t.Fatalf("rate %q: %v", rate, err)
	}
	item, err := models.CreateInventoryItem(context.Background(), db, &models.NewInventoryItem{
		ItemName: name,
		Category: models.ItemCategoryOther,
		HsnSac:   "3401",
		Quantity: decimalPtr(decimal.NewFromInt(quantity)),
		Rate:     &r,
	})
	if err != nil {
		t.Fatalf("create item %q: %v", name, err)
	}
	return item
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func itemQuantity(t *testing.T, db *gorm.DB, id int) decimal.Decimal {
	t.Helper()
	item, err := models.GetInventoryItem(context.Background(), db, id)
	if err != nil {
		t.Fatalf("get item %d: %v", id, err)
	}
	return item.Quantity
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}
