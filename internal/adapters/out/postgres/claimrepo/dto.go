// Package claimrepo provides data transfer objects and mapping functions for
// claim persistence.
package claimrepo

import (
	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClaimDTO represents the database structure for persisting claims.
type ClaimDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ClaimantID  uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Status      string `gorm:"index"`
}

// TableName specifies the database table name for claim entities.
func (ClaimDTO) TableName() string {
	return "claims"
}

func fromDomain(aggregate *claim.Claim) ClaimDTO {
	return ClaimDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		ClaimantID:  aggregate.ClaimantID().Bytes(),
		Description: aggregate.Description(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto ClaimDTO) (*claim.Claim, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	claimantID, err := kernel.UUIDFromBytes(dto.ClaimantID[:])
	if err != nil {
		return nil, err
	}

	status, err := claim.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return claim.RestoreClaim(id, orderID, claimantID, dto.Description, status)
}
