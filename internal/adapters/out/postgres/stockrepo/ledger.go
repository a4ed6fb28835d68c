package stockrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockLedger implements StockLedger using GORM.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a new GORM stock ledger.
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// Reserve atomically decrements the stock of a variation. The decrement only
// applies when enough stock remains, so two competing reservations can never
// take the level negative.
func (l *GormStockLedger) Reserve(ctx context.Context, variationID kernel.UUID, quantity int) error {
	if err := variationID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := l.db.WithContext(ctx).
		Model(&VariationDTO{}).
		Where("id = ? AND stock >= ?", variationID.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := l.variationExists(ctx, variationID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("variation", variationID.String())
		}
		return ports.ErrInsufficientStock
	}

	return l.recordLevel(ctx, variationID)
}

// Release atomically increments the stock of a variation.
func (l *GormStockLedger) Release(ctx context.Context, variationID kernel.UUID, quantity int) error {
	if err := variationID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := l.db.WithContext(ctx).
		Model(&VariationDTO{}).
		Where("id = ?", variationID.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("variation", variationID.String())
	}

	return l.recordLevel(ctx, variationID)
}

func (l *GormStockLedger) variationExists(ctx context.Context, variationID kernel.UUID) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&VariationDTO{}).
		Where("id = ?", variationID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *GormStockLedger) recordLevel(ctx context.Context, variationID kernel.UUID) error {
	var dto VariationDTO
	if err := l.db.WithContext(ctx).First(&dto, "id = ?", variationID.Bytes()).Error; err != nil {
		return err
	}

	record := StockRecordDTO{
		VariationID: dto.ID,
		Stock:       dto.Stock,
		UpdatedAt:   time.Now().UTC(),
	}

	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "variation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stock", "updated_at"}),
		}).
		Create(&record).Error
}
