package commands

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"

	"github.com/rs/zerolog"
)

// AttachPaymentProofCommandHandler uploads a receipt and stores its URL on
// the order. The receipt is stored, never verified.
type AttachPaymentProofCommandHandler struct {
	repos   Repositories
	storage ports.ObjectStorage
	hook    ports.RevalidationHook
	logger  zerolog.Logger
}

func NewAttachPaymentProofCommandHandler(
	repos Repositories,
	storage ports.ObjectStorage,
	hook ports.RevalidationHook,
	logger zerolog.Logger,
) AttachPaymentProofCommandHandler {
	return AttachPaymentProofCommandHandler{
		repos:   repos,
		storage: storage,
		hook:    hook,
		logger:  logger,
	}
}

func (h AttachPaymentProofCommandHandler) Handle(ctx context.Context, cmd AttachPaymentProofCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders := h.repos.OrderRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, loadError(ErrOrderNotFound, "load order", err)
	}
	if o.Status().IsTerminal() {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderTerminal, o.ID(), o.Status())
	}

	url, err := h.storage.Upload(ctx, PaymentProofFolder, cmd.ObjectName(), cmd.Blob())
	if err != nil {
		return nil, &PersistenceError{Op: "upload payment proof", Cause: err}
	}

	if err = o.AttachPaymentProof(url); err != nil {
		return nil, err
	}
	if err = orders.Update(ctx, o); err != nil {
		return nil, &PersistenceError{Op: "update order", Cause: err}
	}

	h.logger.Info().
		Str("order_id", o.ID().String()).
		Str("file_name", cmd.FileName()).
		Msg("payment proof attached")

	revalidate(ctx, h.hook, h.logger, []string{pathAdminOrders, pathAdminOrders + "/" + o.ID().String()})
	return o, nil
}
