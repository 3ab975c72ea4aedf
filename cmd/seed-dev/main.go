package main

import (
	"context"
	"log"

	"github.com/saralbooks/ledger_backend/config"
	"github.com/saralbooks/ledger_backend/models"
	"github.com/saralbooks/ledger_backend/utils"
	"github.com/shopspring/decimal"
)

// Seeds a small development fixture set: a few inventory items, one purchase,
// one sale and one expense, so the report endpoints have data to show.
func main() {
	db, err := config.OpenDatabase()
	utils.ErrorPanic(err)
	utils.ErrorPanic(models.MigrateTable(db))

	logger := config.GetLogger()
	engine := models.NewStockMutationEngine(db, logger)
	ctx := context.Background()

	soap, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Bath Soap 75g",
		Category: models.ItemCategoryFMCG,
		HsnSac:   "3401",
		Quantity: decimalPtr(decimal.NewFromInt(120)),
		Rate:     decimalPtr(decimal.NewFromInt(32)),
		Specs:    models.SpecsDocument{"cartons": 10, "items_per_carton": 12},
	})
	utils.ErrorPanic(err)

	shirt, err := models.CreateInventoryItem(ctx, db, &models.NewInventoryItem{
		ItemName: "Cotton Shirt L",
		Category: models.ItemCategoryGarments,
		HsnSac:   "6105",
		Quantity: decimalPtr(decimal.NewFromInt(40)),
		Rate:     decimalPtr(decimal.NewFromInt(450)),
		Specs:    models.SpecsDocument{"type": "casual", "rack": "R2"},
	})
	utils.ErrorPanic(err)

	_, err = models.RecordPurchase(ctx, engine, &models.NewPurchase{
		ItemId:        soap.ID,
		Quantity:      decimal.NewFromInt(60),
		Rate:          decimal.NewFromInt(28),
		VendorName:    "Sharma Distributors",
		InvoiceNumber: "SD/2231",
		Cgst:          decimal.NewFromInt(151),
		Sgst:          decimal.NewFromInt(151),
	})
	utils.ErrorPanic(err)

	_, err = models.RecordSale(ctx, engine, &models.NewSale{
		CustomerName:  "Gupta General Store",
		PlaceOfSupply: "Delhi",
		LineItems: []models.SaleLineItem{
			{ItemId: soap.ID, Description: "Bath Soap 75g", HsnSac: "3401", Quantity: decimal.NewFromInt(24), Rate: decimal.NewFromInt(32)},
			{ItemId: shirt.ID, Description: "Cotton Shirt L", HsnSac: "6105", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(450)},
		},
		Cgst: decimal.NewFromInt(150),
		Sgst: decimal.NewFromInt(150),
	})
	utils.ErrorPanic(err)

	_, err = models.CreateExpense(ctx, db, &models.NewExpense{
		Description: "Shop electricity bill",
		Amount:      decimal.NewFromInt(1800),
		Category:    "Utilities",
	})
	utils.ErrorPanic(err)

	log.Println("seeded development fixtures")
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
