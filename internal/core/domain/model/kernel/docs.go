// Package kernel provides core domain primitives for the movers system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// The primitive enforces domain invariants, is immutable, and is safe for
// concurrent use. Entities and activity records across the model use it as
// their identifier type.
package kernel
