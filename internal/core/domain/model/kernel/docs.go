// Package kernel provides core domain primitives shared across the marketplace
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for non-negative monetary amounts stored as integer cents
//   - Actor and Role: The authenticated caller identity used by authorization checks
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
