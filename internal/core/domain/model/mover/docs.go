// Package mover provides domain entities and business logic for cargo mover
// management in the movers system. It implements the Mover aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Mover: The aggregate root that manages mover identity, cargo, and lifecycle
//   - QuestState: A state machine that enforces valid lifecycle transitions
//
// Key business rules:
//   - Movers must have a valid unique identifier, a name, and a positive weight limit
//   - The lifecycle follows a strict cycle: Resting -> Loading -> OnMission -> Resting
//   - A resting mover carries no items
//   - The missions counter increments only when a mission completes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package mover
