package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/saralbooks/ledger_backend/models"
	"github.com/shopspring/decimal"
)

// Window holding a 50x9.00 purchase, a 310.00 sale and a 50.00 expense:
// sales 310.00, purchases 450.00, expenses 50.00, net profit -190.00.
func TestSummarize(t *testing.T) {
	db := openTestDB(t)
	engine := newTestEngine(t, db)
	ctx := context.Background()

	item := createTestItem(t, db, "Widget", 100, "10.00")

	if _, err := models.RecordPurchase(ctx, engine, &models.NewPurchase{
		ItemId:   item.ID,
		Quantity: decimal.NewFromInt(50),
		Rate:     mustDecimal(t, "9.00"),
	}); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if _, err := models.RecordSale(ctx, engine, &models.NewSale{
		LineItems: []models.SaleLineItem{
			{ItemId: item.ID, Quantity: decimal.NewFromInt(30), Rate: mustDecimal(t, "10.00")},
		},
		Cgst: decimal.NewFromInt(5),
		Sgst: decimal.NewFromInt(5),
	}); err != nil {
		t.Fatalf("sale: %v", err)
	}
	if _, err := models.CreateExpense(ctx, db, &models.NewExpense{
		Description: "Carriage",
		Amount:      mustDecimal(t, "50.00"),
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	summary, detail, err := models.Summarize(ctx, db, &from, &to, true)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if !summary.TotalSales.Equal(mustDecimal(t, "310.00")) {
		t.Fatalf("total sales = %s, want 310.00", summary.TotalSales)
	}
	if !summary.TotalPurchases.Equal(mustDecimal(t, "450.00")) {
		t.Fatalf("total purchases = %s, want 450.00", summary.TotalPurchases)
	}
	if !summary.TotalExpenses.Equal(mustDecimal(t, "50.00")) {
		t.Fatalf("total expenses = %s, want 50.00", summary.TotalExpenses)
	}
	if !summary.NetProfit.Equal(mustDecimal(t, "-190.00")) {
		t.Fatalf("net profit = %s, want -190.00", summary.NetProfit)
	}

	if detail == nil || len(detail.Sales) != 1 || len(detail.Purchases) != 1 || len(detail.Expenses) != 1 {
		t.Fatalf("detail lists incomplete: %#v", detail)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	engine := newTestEngine(t, db)
	ctx := context.Background()

	item := createTestItem(t, db, "Widget", 100, "10.00")
	if _, err := models.RecordSale(ctx, engine, &models.NewSale{
		LineItems: []models.SaleLineItem{
			{ItemId: item.ID, Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(15)},
		},
	}); err != nil {
		t.Fatalf("sale: %v", err)
	}

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	first, _, err := models.Summarize(ctx, db, &from, &to, false)
	if err != nil {
		t.Fatalf("first summarize: %v", err)
	}
	second, _, err := models.Summarize(ctx, db, &from, &to, false)
	if err != nil {
		t.Fatalf("second summarize: %v", err)
	}
	if !first.TotalSales.Equal(second.TotalSales) ||
		!first.TotalPurchases.Equal(second.TotalPurchases) ||
		!first.TotalExpenses.Equal(second.TotalExpenses) ||
		!first.NetProfit.Equal(second.NetProfit) {
		t.Fatalf("summaries differ with no intervening writes: %#v vs %#v", first, second)
	}
}

func TestSummarizeDefaultsToCurrentMonth(t *testing.T) {
	db := openTestDB(t)
	engine := newTestEngine(t, db)
	ctx := context.Background()

	item := createTestItem(t, db, "Widget", 100, "10.00")

	now := time.Now()
	// An hour before the first of this month is always inside the previous one.
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Hour)
	if _, err := models.RecordSale(ctx, engine, &models.NewSale{
		SaleDate: &lastMonth,
		LineItems: []models.SaleLineItem{
			{ItemId: item.ID, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(99)},
		},
	}); err != nil {
		t.Fatalf("back-dated sale: %v", err)
	}
	if _, err := models.RecordSale(ctx, engine, &models.NewSale{
		LineItems: []models.SaleLineItem{
			{ItemId: item.ID, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10)},
		},
	}); err != nil {
		t.Fatalf("current sale: %v", err)
	}

	summary, _, err := models.Summarize(ctx, db, nil, nil, false)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !summary.TotalSales.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("default window must cover only the current month: total sales = %s", summary.TotalSales)
	}
}
