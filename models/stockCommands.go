package models

import (
	"context"
	"errors"

	"github.com/saralbooks/ledger_backend/config"
	"github.com/saralbooks/ledger_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrZeroDelta = errors.New("quantity delta must be non-zero")

// LedgerWriter persists the ledger record that justifies a quantity delta. It
// runs inside the same transaction as the quantity update, so the record and the
// delta either both commit or both roll back.
type LedgerWriter func(tx *gorm.DB) error

// StockMutationEngine is the only write path to InventoryItem.Quantity.
//
// It serializes mutations per item with an in-process keyed mutex held for the
// whole read-modify-write, and wraps the ledger write plus the quantity update
// in one transaction. The ledger is assumed to run against a single node, so a
// local mutex map replaces the advisory locks a multi-instance deployment would
// need.
type StockMutationEngine struct {
	db        *gorm.DB
	logger    *logrus.Logger
	itemLocks *utils.KeyedMutex
}

func NewStockMutationEngine(db *gorm.DB, logger *logrus.Logger) *StockMutationEngine {
	return &StockMutationEngine{
		db:        db,
		logger:    logger,
		itemLocks: utils.NewKeyedMutex(),
	}
}

func (e *StockMutationEngine) DB() *gorm.DB {
	return e.db
}

// LockItems takes the per-item mutexes for the given ids (deduplicated, acquired
// in ascending order) and returns the release function. Multi-item transactions
// such as sales hold these for their whole transaction.
func (e *StockMutationEngine) LockItems(itemIds ...int) (release func()) {
	return e.itemLocks.Lock(itemIds...)
}

// Apply runs one atomic stock mutation: write the ledger record, then shift the
// item's quantity by delta. Positive deltas are purchases, negative are sales.
// On any failure the transaction rolls back and no partial effect is visible.
func (e *StockMutationEngine) Apply(ctx context.Context, itemId int, delta decimal.Decimal, writeLedger LedgerWriter) error {
	if delta.IsZero() {
		return ErrZeroDelta
	}

	release := e.LockItems(itemId)
	defer release()

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureItemExists(tx, itemId); err != nil {
			return err
		}
		if err := writeLedger(tx); err != nil {
			return err
		}
		return e.ApplyDeltaTx(tx, itemId, delta)
	})
	if err != nil {
		config.LogError(e.logger, "stockCommands.go", "Apply", "apply stock mutation", map[string]any{
			"itemId": itemId,
			"delta":  delta.String(),
		}, err)
		return err
	}
	return nil
}

// ApplyDeltaTx shifts an item's quantity inside an already-open transaction.
// The caller must hold the item's lock (see LockItems) for the transaction's
// duration; sales use this to apply several line deltas atomically.
func (e *StockMutationEngine) ApplyDeltaTx(tx *gorm.DB, itemId int, delta decimal.Decimal) error {
	if delta.IsZero() {
		return ErrZeroDelta
	}
	result := tx.Model(&InventoryItem{}).Where("id = ?", itemId).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func ensureItemExists(tx *gorm.DB, itemId int) error {
	var count int64
	if err := tx.Model(&InventoryItem{}).Where("id = ?", itemId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}
	return nil
}
