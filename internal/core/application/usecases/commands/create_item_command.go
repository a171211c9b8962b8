package commands

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("name is required")
	ErrWeightIsInvalid    = errors.New("weight must be greater than 0")
)

// CreateItemCommand represents a request to register a new magic item.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	name   string
	weight int

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a new item.
// Validates that the item id is valid, the name is not empty, and the
// weight is positive.
func NewCreateItemCommand(itemID kernel.UUID, name string, weight int) (CreateItemCommand, error) {
	command := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setName(name),
		command.setWeight(weight),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateItemCommandIsNotConstructed if validation fails.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the display name for the new item.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Weight returns the item weight in abstract units.
func (c CreateItemCommand) Weight() int {
	return c.weight
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setWeight(weight int) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
