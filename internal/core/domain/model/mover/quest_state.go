package mover

import (
	"fmt"

	"movers/internal/pkg/errs"
)

// QuestState represents the lifecycle state of a mover.
// It implements a strictly linear state machine with no terminal state:
//
//	Resting ──> Loading ──> OnMission ──> Resting ──> ...
//
// There is no transition from Resting directly to OnMission and no
// transition that skips Loading. QuestState is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type QuestState int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized QuestState values.
	Unknown QuestState = iota

	// Resting is the initial state of a freshly created mover and the state
	// it returns to after each completed mission. A resting mover carries
	// no items.
	Resting

	// Loading indicates cargo has been loaded and the mover is waiting to
	// depart on a mission.
	Loading

	// OnMission indicates the mover is en route with its cargo.
	OnMission
)

// getStateStrings returns a map of QuestState values to their string representations.
// All states are included for string conversion.
func getStateStrings() map[QuestState]string {
	return map[QuestState]string{
		Unknown:   "Unknown",
		Resting:   "Resting",
		Loading:   "Loading",
		OnMission: "OnMission",
	}
}

// getValidStateStrings returns a map of only valid QuestState values.
// Only valid states are included to support validation.
func getValidStateStrings() map[QuestState]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[QuestState]string{
		Resting:   "Resting",
		Loading:   "Loading",
		OnMission: "OnMission",
	}
}

// Validate checks if the QuestState value is valid.
//
// Valid states are: Resting, Loading, OnMission.
// Unknown (0) and any other values are invalid.
func (s QuestState) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("quest state is invalid", fmt.Errorf("%d is not a valid quest state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
//
// Returns "Resting", "Loading", or "OnMission" for valid states and
// "Unknown" for anything else. Implements fmt.Stringer and is safe to
// call on any QuestState value.
func (s QuestState) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Load transitions the state to Loading.
//
// Valid transitions:
//   - Resting -> Loading
//
// Any other current state fails with an invalid-state error and the
// state is left unchanged.
func (s QuestState) Load() (QuestState, error) {
	if s != Resting {
		return 0, errs.NewInvalidStateError(
			"Cannot load items onto a Magic Mover that is not resting",
			s.String(),
		)
	}

	return Loading, nil
}

// Start transitions the state to OnMission.
//
// Valid transitions:
//   - Loading -> OnMission
//
// A mover already on a mission fails with a dedicated message so callers
// can tell a double start from a missing load.
func (s QuestState) Start() (QuestState, error) {
	if s == OnMission {
		return 0, errs.NewInvalidStateError(
			"Mover is already on a mission",
			s.String(),
		)
	}

	if s != Loading {
		return 0, errs.NewInvalidStateError(
			"Mover must be in loading state to start a mission",
			s.String(),
		)
	}

	return OnMission, nil
}

// Complete transitions the state back to Resting.
//
// Valid transitions:
//   - OnMission -> Resting
//
// The cycle has no terminal state: a completed mover may load again.
func (s QuestState) Complete() (QuestState, error) {
	if s != OnMission {
		return 0, errs.NewInvalidStateError(
			"Mover is not currently on a mission",
			s.String(),
		)
	}

	return Resting, nil
}
