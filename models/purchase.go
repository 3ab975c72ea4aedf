package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseRecord is an immutable ledger entry for incoming stock. ItemId is
// nullable: deleting the referenced item detaches the record but never removes
// it. The line amount (quantity x rate) is derived at display time, not stored.
type PurchaseRecord struct {
	ID            int             `gorm:"primary_key" json:"id"`
	ItemId        *int            `gorm:"index" json:"item_id"`
	Item          *InventoryItem  `gorm:"foreignKey:ItemId;constraint:OnDelete:SET NULL" json:"item,omitempty"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"quantity"`
	Rate          decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"rate"`
	PurchaseDate  time.Time       `gorm:"index;not null" json:"purchase_date"`
	VendorName    string          `gorm:"size:255" json:"vendor_name"`
	InvoiceNumber string          `gorm:"size:100" json:"invoice_number"`
	Cgst          decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"cgst"`
	Sgst          decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"sgst"`
	Igst          decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"igst"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewPurchase struct {
	ItemId        int             `json:"item_id" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	VendorName    string          `json:"vendor_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Cgst          decimal.Decimal `json:"cgst"`
	Sgst          decimal.Decimal `json:"sgst"`
	Igst          decimal.Decimal `json:"igst"`
}

func (input *NewPurchase) validate() error {
	if input.ItemId <= 0 {
		return fmt.Errorf("%w: item id is required", ErrValidation)
	}
	if !input.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if !input.Rate.IsPositive() {
		return fmt.Errorf("%w: rate must be greater than zero", ErrValidation)
	}
	return nil
}

// RecordPurchase validates the input and applies +quantity to the item through
// the StockMutationEngine, with the purchase row as the ledger write of the same
// transaction. A failed mutation leaves no purchase record behind.
func RecordPurchase(ctx context.Context, engine *StockMutationEngine, input *NewPurchase) (*PurchaseRecord, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	purchaseDate := time.Now()
	if input.PurchaseDate != nil {
		purchaseDate = *input.PurchaseDate
	}

	itemId := input.ItemId
	purchase := PurchaseRecord{
		ItemId:        &itemId,
		Quantity:      input.Quantity,
		Rate:          input.Rate,
		PurchaseDate:  purchaseDate,
		VendorName:    input.VendorName,
		InvoiceNumber: input.InvoiceNumber,
		Cgst:          input.Cgst,
		Sgst:          input.Sgst,
		Igst:          input.Igst,
	}

	err := engine.Apply(ctx, input.ItemId, input.Quantity, func(tx *gorm.DB) error {
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func GetPurchaseRecordAll(ctx context.Context, db *gorm.DB) ([]*PurchaseRecord, error) {
	var purchases []*PurchaseRecord
	if err := db.WithContext(ctx).Preload("Item").Order("purchase_date DESC, id DESC").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
