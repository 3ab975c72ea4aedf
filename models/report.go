package models

import (
	"context"
	"time"

	"github.com/saralbooks/ledger_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportSummary aggregates the three ledgers over a date window.
// netProfit = totalSales - (totalPurchases + totalExpenses).
type ReportSummary struct {
	FromDate       time.Time       `json:"from_date"`
	ToDate         time.Time       `json:"to_date"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// ReportDetail carries the raw matching records when the caller asks for them
// (export/rendering side channel; read-only).
type ReportDetail struct {
	Sales     []*SaleRecord     `json:"sales"`
	Purchases []*PurchaseRecord `json:"purchases"`
	Expenses  []*ExpenseRecord  `json:"expenses"`
}

// Summarize sums sale grand totals, purchase amounts (quantity x rate) and
// expense amounts within [from, to]. Nil bounds default to the current calendar
// month. Reads only; two calls with no intervening writes return equal results.
func Summarize(ctx context.Context, db *gorm.DB, from *time.Time, to *time.Time, includeDetail bool) (*ReportSummary, *ReportDetail, error) {
	defaultFrom, defaultTo := utils.MonthWindow(time.Now())
	fromDate, toDate := defaultFrom, defaultTo
	if from != nil {
		fromDate = *from
	}
	if to != nil {
		toDate = *to
	}

	totalSales, err := sumColumn(ctx, db, &SaleRecord{}, "grand_total", "sale_date", fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}
	totalPurchases, err := sumColumn(ctx, db, &PurchaseRecord{}, "quantity * rate", "purchase_date", fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}
	totalExpenses, err := sumColumn(ctx, db, &ExpenseRecord{}, "amount", "expense_date", fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}

	summary := &ReportSummary{
		FromDate:       fromDate,
		ToDate:         toDate,
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		TotalExpenses:  totalExpenses,
		NetProfit:      totalSales.Sub(totalPurchases.Add(totalExpenses)),
	}
	if !includeDetail {
		return summary, nil, nil
	}

	detail := &ReportDetail{}
	if err := db.WithContext(ctx).Where("sale_date BETWEEN ? AND ?", fromDate, toDate).
		Order("sale_date, id").Find(&detail.Sales).Error; err != nil {
		return nil, nil, err
	}
	if err := db.WithContext(ctx).Where("purchase_date BETWEEN ? AND ?", fromDate, toDate).
		Order("purchase_date, id").Find(&detail.Purchases).Error; err != nil {
		return nil, nil, err
	}
	if err := db.WithContext(ctx).Where("expense_date BETWEEN ? AND ?", fromDate, toDate).
		Order("expense_date, id").Find(&detail.Expenses).Error; err != nil {
		return nil, nil, err
	}
	return summary, detail, nil
}

func sumColumn(ctx context.Context, db *gorm.DB, model interface{}, expr string, dateColumn string, from time.Time, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := db.WithContext(ctx).Model(model).
		Where(dateColumn+" BETWEEN ? AND ?", from, to).
		Select("COALESCE(SUM(" + expr + "), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total.Round(2), nil
}
