package mover

import (
	"errors"
	"fmt"

	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/errs"
	"movers/internal/pkg/guard"
)

// Domain errors for mover operations.
var (
	// ErrNameIsRequired is returned when attempting to create a mover without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemsAreRequired is returned when attempting to load a mover with an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("itemIds")
	// ErrMoverIsNotConstructed is returned when using an improperly initialized Mover.
	ErrMoverIsNotConstructed = errors.New("Mover must be created via NewMover constructor")
)

// Mover represents a cargo mover in the system.
// It is an aggregate root that manages mover identity, its quest state
// machine, and the item references it currently carries.
//
// Key responsibilities:
//   - Managing mover identity (ID, name, weight limit)
//   - Enforcing the Resting -> Loading -> OnMission -> Resting lifecycle
//   - Tracking the ordered set of carried item references
//   - Counting completed missions
//
// Business rules:
//   - Mover must have a valid UUID, non-empty name, and positive weight limit
//   - The weight limit is immutable after creation
//   - A resting mover carries no items
//   - The missions counter only ever increments, and only on a completed mission
//
// Example usage:
//
//	m, err := NewMover(kernel.NewUUID(), "Albus", 50)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Mover starts Resting and is ready to load cargo
type Mover struct {
	// id uniquely identifies the mover
	id kernel.UUID
	// name is the human-readable name of the mover
	name string
	// weightLimit is the maximum total item weight the mover may carry
	weightLimit int
	// questState is the mover's current position in its lifecycle
	questState QuestState
	// currentItems are the ordered item references currently loaded
	currentItems []kernel.UUID
	// missionsCompleted counts successfully finished missions
	missionsCompleted int
	// guard ensures the mover was properly constructed
	guard guard.ConstructorGuard
}

// NewMover creates a new Mover with the specified parameters.
// This is the only way to create a fresh Mover instance.
//
// The mover starts in the Resting state with no items loaded and zero
// completed missions.
//
// Parameters:
//   - id: Unique identifier for the mover (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - weightLimit: Maximum total carried weight (must be positive)
//
// Returns a validation error (aggregated for multiple issues) if any
// parameter is invalid.
func NewMover(id kernel.UUID, name string, weightLimit int) (*Mover, error) {
	mover := &Mover{
		questState: Resting,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mover.setID(id),
		mover.setName(name),
		mover.setWeightLimit(weightLimit),
	); err != nil {
		return nil, err
	}

	return mover, nil
}

// RestoreMover reconstructs a Mover aggregate from persistent storage.
// Unlike NewMover which creates fresh movers in the Resting state, this
// constructor restores a mover to its previously persisted state, including
// its quest state, carried items, and mission counter.
//
// Parameters:
//   - id: Unique identifier for the mover
//   - name: Human-readable mover name
//   - weightLimit: Maximum total carried weight
//   - questState: Persisted lifecycle state
//   - currentItems: Item references carried at the time of persistence
//   - missionsCompleted: Number of missions finished so far
//
// Returns a validation error if any parameter is invalid or if the
// persisted state violates the resting-movers-carry-nothing invariant.
func RestoreMover(
	id kernel.UUID,
	name string,
	weightLimit int,
	questState QuestState,
	currentItems []kernel.UUID,
	missionsCompleted int,
) (*Mover, error) {
	mover := &Mover{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mover.setID(id),
		mover.setName(name),
		mover.setWeightLimit(weightLimit),
		mover.setQuestState(questState),
		mover.setCurrentItems(currentItems),
		mover.setMissionsCompleted(missionsCompleted),
	); err != nil {
		return nil, err
	}

	if mover.questState == Resting && len(mover.currentItems) != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"currentItems",
			fmt.Errorf("a resting mover cannot carry %d items", len(mover.currentItems)),
		)
	}

	return mover, nil
}

// IsEqual compares two movers for equality based on their unique identifiers.
// Two movers are considered equal if they have the same ID, regardless of
// other attributes.
func (m *Mover) IsEqual(other *Mover) bool {
	if other == nil {
		return false
	}
	return m.id.IsEqual(other.id)
}

// Validate checks if the Mover was properly constructed via NewMover or
// RestoreMover. The zero value of Mover is invalid and will fail this check.
func (m *Mover) Validate() error {
	if m == nil {
		return ErrMoverIsNotConstructed
	}
	return m.guard.Validate(ErrMoverIsNotConstructed)
}

// ID returns the unique identifier of the mover.
func (m *Mover) ID() kernel.UUID {
	return m.id
}

// Name returns the human-readable name of the mover.
func (m *Mover) Name() string {
	return m.name
}

// WeightLimit returns the maximum total item weight the mover may carry.
// The limit is immutable and set during mover construction.
func (m *Mover) WeightLimit() int {
	return m.weightLimit
}

// QuestState returns the mover's current lifecycle state.
func (m *Mover) QuestState() QuestState {
	return m.questState
}

// CurrentItems returns the ordered item references the mover currently carries.
// The returned slice is a copy to prevent external modification. It is empty
// whenever the mover is Resting.
func (m *Mover) CurrentItems() []kernel.UUID {
	out := make([]kernel.UUID, len(m.currentItems))
	copy(out, m.currentItems)
	return out
}

// MissionsCompleted returns the number of missions the mover has finished.
func (m *Mover) MissionsCompleted() int {
	return m.missionsCompleted
}

// Load places the given item references onto the mover and transitions it
// to the Loading state.
//
// Business rules:
//   - The mover must currently be Resting
//   - At least one item reference must be provided and all must be valid
//
// The mover is left entirely unchanged when the transition is rejected.
// Weight validation against the mover's limit is the caller's concern; the
// aggregate only enforces the state machine.
func (m *Mover) Load(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemsAreRequired
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	newState, err := m.questState.Load()
	if err != nil {
		return err
	}

	m.questState = newState
	m.currentItems = make([]kernel.UUID, len(itemIDs))
	copy(m.currentItems, itemIDs)
	return nil
}

// StartMission transitions a loaded mover to the OnMission state.
// The carried items are unchanged. Fails with an invalid-state error when
// the mover is not Loading, leaving the mover untouched.
func (m *Mover) StartMission() error {
	newState, err := m.questState.Start()
	if err != nil {
		return err
	}

	m.questState = newState
	return nil
}

// EndMission completes the mover's current mission: the mover returns to
// Resting, its cargo list is cleared, and the missions counter increments.
// Fails with an invalid-state error when the mover is not OnMission,
// leaving the mover untouched.
func (m *Mover) EndMission() error {
	newState, err := m.questState.Complete()
	if err != nil {
		return err
	}

	m.questState = newState
	m.currentItems = nil
	m.missionsCompleted++
	return nil
}

// setID sets the mover's unique identifier with validation.
// This is an internal setter used during construction.
func (m *Mover) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	return nil
}

// setName sets the mover's name with validation.
// This is an internal setter used during construction.
func (m *Mover) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	m.name = name
	return nil
}

// setWeightLimit sets the mover's weight limit with validation.
// This is an internal setter used during construction.
func (m *Mover) setWeightLimit(weightLimit int) error {
	if weightLimit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLimit",
			fmt.Errorf("%d is not greater than 0", weightLimit),
		)
	}

	m.weightLimit = weightLimit
	return nil
}

// setQuestState sets the mover's lifecycle state with validation.
// Used during restoration from persistent state.
func (m *Mover) setQuestState(questState QuestState) error {
	if err := questState.Validate(); err != nil {
		return err
	}

	m.questState = questState
	return nil
}

// setCurrentItems sets the mover's carried item references.
// Used during restoration from persistent state.
func (m *Mover) setCurrentItems(currentItems []kernel.UUID) error {
	for _, itemID := range currentItems {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	m.currentItems = make([]kernel.UUID, len(currentItems))
	copy(m.currentItems, currentItems)
	return nil
}

// setMissionsCompleted sets the mission counter with validation.
// Used during restoration from persistent state.
func (m *Mover) setMissionsCompleted(missionsCompleted int) error {
	if missionsCompleted < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"missionsCompleted",
			fmt.Errorf("%d is negative", missionsCompleted),
		)
	}

	m.missionsCompleted = missionsCompleted
	return nil
}
