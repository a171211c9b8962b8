package commands

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var (
	ErrCreateMoverCommandIsNotConstructed = errors.New(
		"CreateMoverCommand must be created via NewCreateMoverCommand constructor",
	)
	ErrMoverNameIsRequired  = errors.New("name is required")
	ErrWeightLimitIsInvalid = errors.New("weight limit must be greater than 0")
)

// CreateMoverCommand represents a request to register a new mover.
// A newly registered mover starts resting with no cargo and no completed
// missions.
//
// Example:
//
//	moverID := kernel.NewUUID()
//	cmd, err := NewCreateMoverCommand(moverID, "Merlin", 50)
//	if err != nil {
//	    return fmt.Errorf("invalid mover data: %w", err)
//	}
//
//	handler := NewCreateMoverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create mover: %w", err)
//	}
type CreateMoverCommand struct { //nolint:recvcheck //using for validation
	moverID     kernel.UUID
	name        string
	weightLimit int

	guard guard.ConstructorGuard
}

// NewCreateMoverCommand creates a command to register a new mover.
// Validates that the mover id is valid, the name is not empty, and the
// weight limit is positive.
func NewCreateMoverCommand(moverID kernel.UUID, name string, weightLimit int) (CreateMoverCommand, error) {
	command := CreateMoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMoverID(moverID),
		command.setName(name),
		command.setWeightLimit(weightLimit),
	); err != nil {
		return CreateMoverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMoverCommandIsNotConstructed if validation fails.
func (c CreateMoverCommand) Validate() error {
	return c.guard.Validate(ErrCreateMoverCommandIsNotConstructed)
}

// MoverID returns the unique identifier for the new mover.
func (c CreateMoverCommand) MoverID() kernel.UUID {
	return c.moverID
}

// Name returns the display name for the new mover.
func (c CreateMoverCommand) Name() string {
	return c.name
}

// WeightLimit returns the maximum cargo weight the mover can carry.
func (c CreateMoverCommand) WeightLimit() int {
	return c.weightLimit
}

func (c *CreateMoverCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}

func (c *CreateMoverCommand) setName(name string) error {
	if name == "" {
		return ErrMoverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMoverCommand) setWeightLimit(weightLimit int) error {
	if weightLimit <= 0 {
		return ErrWeightLimitIsInvalid
	}

	c.weightLimit = weightLimit
	return nil
}
