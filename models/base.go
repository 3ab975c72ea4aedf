package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// MigrateTable creates or updates the ledger schema. The invoice number series
// rows are not seeded here: NextInvoiceNumber creates a year's row on first use
// with a conflict-tolerant insert.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&InventoryItem{},
		&PurchaseRecord{},
		&SaleRecord{},
		&ExpenseRecord{},
		&InvoiceNumberSeries{},
	)
}

// SpecsDocument is the category-dependent attribute map of an inventory item,
// stored as an opaque JSON text column. Shape is validated against the item's
// category at construction (see ValidateSpecs).
type SpecsDocument map[string]interface{}

func (d SpecsDocument) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *SpecsDocument) Scan(src interface{}) error {
	return scanJSONColumn(src, d)
}

func scanJSONColumn(src interface{}, dest interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
