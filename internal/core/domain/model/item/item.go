package item

import (
	"errors"
	"fmt"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/errs"
	"movers/internal/pkg/guard"
)

// Domain errors for item operations.
var (
	// ErrNameIsRequired is returned when attempting to create an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a weighted object that movers can carry.
// Items are immutable once created: movers reference them by ID but never
// own or modify them.
//
// Business rules:
//   - Item must have a valid UUID and a non-empty name
//   - Weight must be positive
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// name is the human-readable name of the item
	name string
	// weight is the item's weight used in capacity checks
	weight int
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new Item with the specified parameters.
// This is the only way to create a valid Item instance.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - weight: Item weight (must be positive)
//
// Returns a validation error (aggregated for multiple issues) if any
// parameter is invalid.
func NewItem(id kernel.UUID, name string, weight int) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an Item from persistent storage.
// Items carry no lifecycle state, so restoration applies the same
// validation as creation.
func RestoreItem(id kernel.UUID, name string, weight int) (*Item, error) {
	return NewItem(id, name, weight)
}

// IsEqual compares two items for equality based on their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	if other == nil {
		return false
	}
	return i.id.IsEqual(other.id)
}

// Validate checks if the Item was properly constructed via NewItem.
// The zero value of Item is invalid and will fail this check.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the unique identifier of the item.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the human-readable name of the item.
func (i *Item) Name() string {
	return i.name
}

// Weight returns the item's weight.
func (i *Item) Weight() int {
	return i.weight
}

// setID sets the item's unique identifier with validation.
// This is an internal setter used during construction.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

// setName sets the item's name with validation.
// This is an internal setter used during construction.
func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	i.name = name
	return nil
}

// setWeight sets the item's weight with validation.
// This is an internal setter used during construction.
func (i *Item) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%d is not greater than 0", weight),
		)
	}

	i.weight = weight
	return nil
}
