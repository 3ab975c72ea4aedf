package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRecord is independent of inventory; no cross-entity invariant applies.
type ExpenseRecord struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Description string          `gorm:"size:500;not null" json:"description" binding:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount" binding:"required"`
	Category    string          `gorm:"size:100" json:"category"`
	ExpenseDate time.Time       `gorm:"index;not null" json:"expense_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewExpense struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	ExpenseDate *time.Time      `json:"expense_date"`
}

func (input *NewExpense) validate() error {
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !input.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	return nil
}

func CreateExpense(ctx context.Context, db *gorm.DB, input *NewExpense) (*ExpenseRecord, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := ExpenseRecord{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		ExpenseDate: expenseDate,
	}
	if err := db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func GetExpenseRecordAll(ctx context.Context, db *gorm.DB) ([]*ExpenseRecord, error) {
	var expenses []*ExpenseRecord
	if err := db.WithContext(ctx).Order("expense_date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
