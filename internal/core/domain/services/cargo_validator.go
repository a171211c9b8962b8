package services

import (
	"movers/internal/core/domain/model/item"
	"movers/internal/pkg/errs"
)

// CargoValidator is a domain service that enforces the capacity rule: the
// total weight of a set of items must not exceed a mover's weight limit.
//
// The check runs once, at the moment cargo is loaded; it is not re-evaluated
// when a mission starts or ends. The validator is pure: it performs no I/O
// and holds no state, which keeps it independently unit-testable.
//
// Example usage:
//
//	validator := NewCargoValidator()
//	if err := validator.Validate(items, m.WeightLimit()); err != nil {
//	    // Total weight exceeds the limit; err carries both numbers
//	    return err
//	}
type CargoValidator struct{}

// NewCargoValidator creates a new CargoValidator instance.
func NewCargoValidator() CargoValidator {
	return CargoValidator{}
}

// Validate sums the weights of the given items and checks the total against
// the weight limit.
//
// Parameters:
//   - items: The items a caller wants to load (each must be valid)
//   - weightLimit: The mover's maximum total carried weight
//
// Returns a CapacityExceededError embedding both the computed total and the
// limit when the total is greater than the limit, a validation error when an
// item is invalid, and nil otherwise. A total exactly equal to the limit is
// allowed.
func (v CargoValidator) Validate(items []*item.Item, weightLimit int) error {
	totalWeight := 0
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		totalWeight += it.Weight()
	}

	if totalWeight > weightLimit {
		return errs.NewCapacityExceededError(totalWeight, weightLimit)
	}

	return nil
}
