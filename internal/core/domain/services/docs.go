// Package services provides stateless domain services for the movers system.
// Domain services hold business logic that spans entities and does not
// naturally belong to a single aggregate.
//
// The package includes:
//   - CargoValidator: the pure capacity check run when cargo is loaded
package services
