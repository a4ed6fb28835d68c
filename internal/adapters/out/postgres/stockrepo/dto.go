// Package stockrepo implements the stock ledger on top of the variations
// table. Reservations are single conditional UPDATEs so concurrent orders can
// never drive stock below zero.
package stockrepo

import (
	"time"

	"github.com/google/uuid"
)

// VariationDTO represents the database structure for article variations and
// their available stock.
type VariationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArticleID uuid.UUID `gorm:"type:uuid;index"`
	Stock     int
}

// TableName specifies the database table name for variation entities.
func (VariationDTO) TableName() string {
	return "variations"
}

// StockRecordDTO mirrors the current stock level of a variation together
// with the time of the last movement. It is written in the same transaction
// as the variation row and serves reporting without touching the hot table.
type StockRecordDTO struct {
	VariationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Stock       int
	UpdatedAt   time.Time
}

// TableName specifies the database table name for stock record entities.
func (StockRecordDTO) TableName() string {
	return "stock_records"
}
