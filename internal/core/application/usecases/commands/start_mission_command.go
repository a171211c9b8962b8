package commands

import (
	"errors"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/guard"
)

var ErrStartMissionCommandIsNotConstructed = errors.New(
	"StartMissionCommand must be created via NewStartMissionCommand constructor",
)

// StartMissionCommand represents a request to send a loaded mover on a mission.
type StartMissionCommand struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartMissionCommand creates a command to start a mission for the mover.
func NewStartMissionCommand(moverID kernel.UUID) (StartMissionCommand, error) {
	command := StartMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMoverID(moverID); err != nil {
		return StartMissionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartMissionCommandIsNotConstructed if validation fails.
func (c StartMissionCommand) Validate() error {
	return c.guard.Validate(ErrStartMissionCommandIsNotConstructed)
}

// MoverID returns the target mover id from the command.
func (c StartMissionCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *StartMissionCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	c.moverID = moverID
	return nil
}
