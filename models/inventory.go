package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saralbooks/ledger_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem owns an item's identity and its on-hand quantity. Quantity is
// mutated only by the StockMutationEngine together with the ledger write that
// justifies the change; there is no other write path.
type InventoryItem struct {
	ID        int             `gorm:"primary_key" json:"id"`
	ItemName  string          `gorm:"size:255;not null" json:"item_name" binding:"required"`
	Category  ItemCategory    `gorm:"size:20;not null" json:"category" binding:"required"`
	HsnSac    string          `gorm:"size:20" json:"hsn_sac"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"rate"`
	Specs     SpecsDocument   `gorm:"type:text" json:"specs"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewInventoryItem carries the create payload. Quantity and Rate are pointers
// so that a missing field is distinguishable from an explicit zero: an item may
// legitimately open with zero stock, but omitting the field is a client error.
type NewInventoryItem struct {
	ItemName string           `json:"item_name" binding:"required"`
	Category ItemCategory     `json:"category" binding:"required"`
	HsnSac   string           `json:"hsn_sac"`
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
	Rate     *decimal.Decimal `json:"rate" binding:"required"`
	Specs    SpecsDocument    `json:"specs"`
}

var ErrItemNotFound = fmt.Errorf("inventory item: %w", utils.ErrorRecordNotFound)

func (input *NewInventoryItem) validate() error {
	if input.ItemName == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if input.Quantity == nil {
		return fmt.Errorf("%w: opening quantity is required", ErrValidation)
	}
	if input.Quantity.IsNegative() {
		return fmt.Errorf("%w: opening quantity must not be negative", ErrValidation)
	}
	if input.Rate == nil {
		return fmt.Errorf("%w: rate is required", ErrValidation)
	}
	if input.Rate.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", ErrValidation)
	}
	return ValidateSpecs(input.Category, input.Specs)
}

func CreateInventoryItem(ctx context.Context, db *gorm.DB, input *NewInventoryItem) (*InventoryItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := InventoryItem{
		ItemName: input.ItemName,
		Category: input.Category,
		HsnSac:   input.HsnSac,
		Quantity: *input.Quantity,
		Rate:     *input.Rate,
		Specs:    input.Specs,
	}
	if item.Specs == nil {
		item.Specs = SpecsDocument{}
	}

	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func GetInventoryItem(ctx context.Context, db *gorm.DB, id int) (*InventoryItem, error) {
	var item InventoryItem
	err := db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func GetInventoryItemAll(ctx context.Context, db *gorm.DB) ([]*InventoryItem, error) {
	var items []*InventoryItem
	if err := db.WithContext(ctx).Order("item_name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteInventoryItem removes an item. Historical purchase records referencing it
// are detached, never deleted: ledger entries are immutable and outlive the item.
func DeleteInventoryItem(ctx context.Context, db *gorm.DB, id int) (*InventoryItem, error) {
	item, err := GetInventoryItem(ctx, db, id)
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PurchaseRecord{}).Where("item_id = ?", id).
			Update("item_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&InventoryItem{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
