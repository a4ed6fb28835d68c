// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The unique index on OrderID enforces the 1:1 order/delivery relationship
// at the storage layer as well.
type DeliveryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CourierID  *uuid.UUID `gorm:"type:uuid;index"`
	Address    AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	TargetDate time.Time
	Status     string `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded destination address columns.
type AddressDTO struct {
	Street string
	City   string
	Zip    string
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		CourierID: courierID,
		Address: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Zip:    aggregate.Address().Zip(),
		},
		TargetDate: aggregate.TargetDate(),
		Status:     aggregate.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	address, err := delivery.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Zip)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, address, courierID, dto.TargetDate, status)
}
