package commands

import (
	"context"

	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/item"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/services"
	"movers/internal/pkg/errs"
)

// LoadMoverCommandHandler orchestrates the cargo loading transition.
// Fetches the mover and the requested items, validates the capacity rule,
// applies the Resting -> Loading transition, and persists the mover update
// together with one audit log entry in a single transaction.
//
// Example:
//
//	handler := NewLoadMoverCommandHandler(uowFactory)
//	cmd, _ := NewLoadMoverCommand(moverID, itemIDs)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // mover or item does not exist
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    // cargo is too heavy for this mover
//	case errors.Is(err, errs.ErrInvalidState):
//	    // mover is not resting
//	case err != nil:
//	    // store failure
//	}
type LoadMoverCommandHandler struct {
	uowFactory     MissionUoWFactory
	cargoValidator services.CargoValidator
}

// NewLoadMoverCommandHandler creates a handler for cargo loading operations.
// Requires a MissionUoWFactory for coordinating the transactional writes.
func NewLoadMoverCommandHandler(uowFactory MissionUoWFactory) LoadMoverCommandHandler {
	return LoadMoverCommandHandler{
		uowFactory:     uowFactory,
		cargoValidator: services.NewCargoValidator(),
	}
}

// Handle processes the load command.
// All reads and both writes happen inside one transaction; any guard or
// store failure aborts the whole scope, so a failed load leaves the mover
// and the audit trail untouched. The capacity rule is checked before the
// state guard, matching the order in which a caller reads the failure:
// an overweight request is reported as such even if the mover is also busy.
func (h LoadMoverCommandHandler) Handle(ctx context.Context, command LoadMoverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moverRepo := uow.MoverRepository()
	itemRepo := uow.ItemRepository()
	logRepo := uow.ActivityLogRepository()

	moverAggregate, err := moverRepo.Get(ctx, command.MoverID())
	if err != nil {
		return err
	}

	itemIDs := command.ItemIDs()
	items, err := itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}
	if len(items) != len(itemIDs) {
		return errs.NewObjectNotFoundError("item", firstMissingItemID(itemIDs, items).String())
	}

	if err = h.cargoValidator.Validate(items, moverAggregate.WeightLimit()); err != nil {
		return err
	}

	if err = moverAggregate.Load(itemIDs); err != nil {
		return err
	}

	entry, err := activitylog.NewEntry(
		kernel.NewUUID(),
		moverAggregate.ID(),
		moverAggregate.QuestState(),
		moverAggregate.CurrentItems(),
	)
	if err != nil {
		return err
	}

	if err = moverRepo.Update(ctx, moverAggregate); err != nil {
		return err
	}

	if err = logRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// firstMissingItemID reports the first requested id that is absent from the
// fetched items, for the not-found error message.
func firstMissingItemID(requested []kernel.UUID, fetched []*item.Item) kernel.UUID {
	for _, id := range requested {
		found := false
		for _, it := range fetched {
			if it.ID().IsEqual(id) {
				found = true
				break
			}
		}
		if !found {
			return id
		}
	}
	return kernel.UUID{}
}
