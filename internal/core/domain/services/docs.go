// Package services provides domain services that implement business rules
// spanning multiple aggregates in the marketplace fulfillment system.
//
// The package includes:
//   - AccessPolicy: role and ownership rules deciding which actor may perform
//     which fulfillment operation
//
// Domain services are stateless; they operate on aggregates loaded and
// supplied by the application layer.
package services
