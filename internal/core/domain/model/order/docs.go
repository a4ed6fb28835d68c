// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions coupled to stock reservations.
//
// The package includes:
//   - Order: The aggregate root owning line items, total price, and lifecycle
//   - Line: A value object snapshotting article, variation, quantity, and unit price
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created in Pending status with all line stock reserved
//   - InDelivery and Delivered are reached only through delivery propagation
//   - Delivered and Refunded are terminal states
//   - Orders may only be deleted while Pending or Cancelled; deleting a
//     Pending order releases its reservations
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
