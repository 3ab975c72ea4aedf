package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleRecord is an immutable ledger entry for outgoing stock. Line items are
// stored as one opaque JSON document: they have no lifecycle of their own and
// are never joined independently.
type SaleRecord struct {
	ID              int             `gorm:"primary_key" json:"id"`
	InvoiceNumber   string          `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	SequenceNo      int             `gorm:"not null" json:"sequence_no"`
	CustomerName    string          `gorm:"size:255" json:"customer_name"`
	CustomerAddress string          `gorm:"size:500" json:"customer_address"`
	CustomerGstin   string          `gorm:"size:20" json:"customer_gstin"`
	PlaceOfSupply   string          `gorm:"size:100" json:"place_of_supply"`
	VehicleNo       string          `gorm:"size:20" json:"vehicle_no"`
	LineItems       SaleLineItems   `gorm:"type:text" json:"line_items"`
	TaxableTotal    decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"taxable_total"`
	Cgst            decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"cgst"`
	Sgst            decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"sgst"`
	Igst            decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"igst"`
	GrandTotal      decimal.Decimal `gorm:"type:decimal(20,2);default:0" json:"grand_total"`
	SaleDate        time.Time       `gorm:"index;not null" json:"sale_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type SaleLineItem struct {
	ItemId      int             `json:"item_id"`
	Description string          `json:"description"`
	HsnSac      string          `json:"hsn_sac"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

type SaleLineItems []SaleLineItem

func (l SaleLineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *SaleLineItems) Scan(src interface{}) error {
	return scanJSONColumn(src, l)
}

type NewSale struct {
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address"`
	CustomerGstin   string          `json:"customer_gstin"`
	PlaceOfSupply   string          `json:"place_of_supply"`
	VehicleNo       string          `json:"vehicle_no"`
	LineItems       []SaleLineItem  `json:"line_items" binding:"required"`
	Cgst            decimal.Decimal `json:"cgst"`
	Sgst            decimal.Decimal `json:"sgst"`
	Igst            decimal.Decimal `json:"igst"`
	SaleDate        *time.Time      `json:"sale_date"`
}

var ErrEmptyLineItems = fmt.Errorf("%w: sale requires at least one line item", ErrValidation)

func (input *NewSale) validate() error {
	if len(input.LineItems) == 0 {
		return ErrEmptyLineItems
	}
	for i, line := range input.LineItems {
		if line.ItemId <= 0 {
			return fmt.Errorf("%w: line %d: item id is required", ErrValidation, i+1)
		}
		if line.Quantity.IsNegative() {
			return fmt.Errorf("%w: line %d: quantity must not be negative", ErrValidation, i+1)
		}
		if line.Rate.IsNegative() {
			return fmt.Errorf("%w: line %d: rate must not be negative", ErrValidation, i+1)
		}
	}
	return nil
}

func (input *NewSale) itemIds() []int {
	ids := make([]int, 0, len(input.LineItems))
	for _, line := range input.LineItems {
		ids = append(ids, line.ItemId)
	}
	return ids
}

// RecordSale persists one SaleRecord and applies -quantity for every line item,
// all inside a single transaction. Per-item locks are held in ascending id order
// for the whole transaction, so concurrent sales against the same item serialize
// and sales against disjoint items proceed independently. The caller's tax
// amounts are stored as given; they are not recomputed from a rate table.
//
// Any failure - an unknown line item included - rolls the whole sale back:
// no SaleRecord, no quantity change, no consumed invoice number.
func RecordSale(ctx context.Context, engine *StockMutationEngine, input *NewSale) (*SaleRecord, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	saleDate := time.Now()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	release := engine.LockItems(input.itemIds()...)
	defer release()

	var sale SaleRecord
	err := engine.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taxableTotal := decimal.Zero
		for _, line := range input.LineItems {
			if err := ensureItemExists(tx, line.ItemId); err != nil {
				return err
			}
			taxableTotal = taxableTotal.Add(line.Rate.Mul(line.Quantity))
		}
		taxableTotal = taxableTotal.Round(2)
		grandTotal := taxableTotal.Add(input.Cgst).Add(input.Sgst).Add(input.Igst)

		invoiceNumber, sequence, err := NextInvoiceNumber(tx, saleDate)
		if err != nil {
			return err
		}

		sale = SaleRecord{
			InvoiceNumber:   invoiceNumber,
			SequenceNo:      sequence,
			CustomerName:    input.CustomerName,
			CustomerAddress: input.CustomerAddress,
			CustomerGstin:   input.CustomerGstin,
			PlaceOfSupply:   input.PlaceOfSupply,
			VehicleNo:       input.VehicleNo,
			LineItems:       SaleLineItems(input.LineItems),
			TaxableTotal:    taxableTotal,
			Cgst:            input.Cgst,
			Sgst:            input.Sgst,
			Igst:            input.Igst,
			GrandTotal:      grandTotal,
			SaleDate:        saleDate,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, line := range input.LineItems {
			if !line.Quantity.IsPositive() {
				continue
			}
			if err := engine.ApplyDeltaTx(tx, line.ItemId, line.Quantity.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func GetSaleRecordAll(ctx context.Context, db *gorm.DB) ([]*SaleRecord, error) {
	var sales []*SaleRecord
	if err := db.WithContext(ctx).Order("sale_date DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
