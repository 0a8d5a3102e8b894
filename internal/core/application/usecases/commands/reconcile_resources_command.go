package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var ErrReconcileResourcesCommandIsNotConstructed = errors.New(
	"ReconcileResourcesCommand must be created via NewReconcileResourcesCommand constructor",
)

// ReconcileResourcesCommand triggers a full scan that realigns vehicle and
// driver statuses with the active orders.
type ReconcileResourcesCommand struct {
	dryRun bool

	guard guard.ConstructorGuard
}

// NewReconcileResourcesCommand creates the command. With dryRun set, drift is
// reported but nothing is written.
func NewReconcileResourcesCommand(dryRun bool) ReconcileResourcesCommand {
	return ReconcileResourcesCommand{
		dryRun: dryRun,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c *ReconcileResourcesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileResourcesCommandIsNotConstructed)
}

func (c *ReconcileResourcesCommand) DryRun() bool {
	return c.dryRun
}
