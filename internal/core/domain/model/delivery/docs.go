// Package delivery provides the Delivery aggregate tracking physical transport
// of a marketplace order to its buyer.
//
// The package includes:
//   - Delivery: The aggregate root, 1:1 with an order, owning courier
//     assignment, destination address, target date, and status
//   - Status: A closed enum with a declared one-directional mapping to the
//     parent order's status (EnRoute -> in_delivery, Completed -> delivered)
//   - Address: A value object for the delivery destination
//
// Completed is terminal: a completed delivery accepts no status change and
// cannot be deleted.
package delivery
