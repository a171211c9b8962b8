// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"movers/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MoverRepoFactory provides access to the mover repository within a transaction.
	MoverRepoFactory interface {
		MoverRepository() ports.MoverRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// ActivityLogRepoFactory provides access to the activity log repository within a transaction.
	ActivityLogRepoFactory interface {
		ActivityLogRepository() ports.ActivityLogRepository
	}

	// MoverUoW manages transactions for mover-only operations.
	// Used when commands only create or modify mover aggregates.
	MoverUoW interface {
		TxManager
		MoverRepoFactory
	}

	// MoverUoWFactory creates new mover unit of work instances.
	MoverUoWFactory interface {
		Create() MoverUoW
	}

	// ItemUoW manages transactions for item-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// MissionUoW manages transactions for lifecycle transitions.
	// Every transition writes the mover and one audit log entry in the same
	// transaction; loading additionally reads items for the capacity check.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   moverRepo := uow.MoverRepository()
	//   logRepo := uow.ActivityLogRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	MissionUoW interface {
		TxManager
		MoverRepoFactory
		ItemRepoFactory
		ActivityLogRepoFactory
	}

	// MissionUoWFactory creates new unit of work instances for lifecycle transitions.
	MissionUoWFactory interface {
		Create() MissionUoW
	}
)
