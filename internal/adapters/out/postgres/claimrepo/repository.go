package claimrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClaimRepository implements ClaimRepository using GORM.
type GormClaimRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClaimRepository creates a new GORM claim repository.
func NewGormClaimRepository(db *gorm.DB, tracker aggregateTracker) *GormClaimRepository {
	return &GormClaimRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new claim to the database.
func (r *GormClaimRepository) Add(ctx context.Context, aggregate *claim.Claim) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing claim to the database.
func (r *GormClaimRepository) Update(ctx context.Context, aggregate *claim.Claim) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ClaimDTO{}).
		Where("id = ?", dto.ID).
		Select("description", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a claim by ID.
func (r *GormClaimRepository) Get(ctx context.Context, id kernel.UUID) (*claim.Claim, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClaimDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("claim", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrderID retrieves every claim filed against an order.
func (r *GormClaimRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*claim.Claim, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ClaimDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	claims := make([]*claim.Claim, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, nil
}

// Delete removes a claim by ID.
func (r *GormClaimRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClaimDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("claim", id.String())
	}

	return nil
}

// DeleteByOrderID removes all claims filed against an order.
func (r *GormClaimRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ClaimDTO{}, "order_id = ?", orderID.Bytes()).Error
}
