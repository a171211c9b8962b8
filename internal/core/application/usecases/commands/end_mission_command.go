package commands

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var ErrEndMissionCommandIsNotConstructed = errors.New(
	"EndMissionCommand must be created via NewEndMissionCommand constructor",
)

// EndMissionCommand represents a request to complete a mover's mission.
type EndMissionCommand struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndMissionCommand creates a command to end the mover's current mission.
func NewEndMissionCommand(moverID kernel.UUID) (EndMissionCommand, error) {
	command := EndMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMoverID(moverID); err != nil {
		return EndMissionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEndMissionCommandIsNotConstructed if validation fails.
func (c EndMissionCommand) Validate() error {
	return c.guard.Validate(ErrEndMissionCommandIsNotConstructed)
}

// MoverID returns the target mover id from the command.
func (c EndMissionCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *EndMissionCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}
