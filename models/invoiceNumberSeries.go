package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceNumberSeries is the per-year sale numbering counter. The increment rides
// the sale's own transaction: the UPDATE row-locks the year row until commit, so
// two concurrent sales cannot observe the same sequence value. This replaces the
// count-of-rows numbering an earlier revision used, which could hand out
// duplicates under concurrency.
type InvoiceNumberSeries struct {
	Year         int       `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastSequence int       `gorm:"not null;default:0" json:"last_sequence"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NextInvoiceNumber reserves the next sequence for the given date's year and
// formats the display identifier, e.g. INV-2026-007. Must be called inside the
// transaction that inserts the SaleRecord: a rollback releases the number's row
// lock without committing the increment.
//
// The year row is created with an insert that ignores a duplicate-key conflict,
// so two first sales of a new year can race on it without either failing.
func NextInvoiceNumber(tx *gorm.DB, date time.Time) (string, int, error) {
	year := date.Year()

	series := InvoiceNumberSeries{Year: year}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&series).Error; err != nil {
		return "", 0, err
	}

	if err := tx.Model(&InvoiceNumberSeries{}).Where("year = ?", year).
		UpdateColumn("last_sequence", gorm.Expr("last_sequence + 1")).Error; err != nil {
		return "", 0, err
	}

	var sequence int
	if err := tx.Model(&InvoiceNumberSeries{}).Where("year = ?", year).
		Select("last_sequence").Scan(&sequence).Error; err != nil {
		return "", 0, err
	}

	return fmt.Sprintf("INV-%d-%03d", year, sequence), sequence, nil
}
