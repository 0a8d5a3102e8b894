package commands

import (
	"context"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	pathFleet       = "/fleet"
	pathHome        = "/"
	pathAdminOrders = "/admin/orders"
)

// orderPaths lists the storefront and admin pages that render o.
func orderPaths(o *order.Order) []string {
	return []string{pathHome, pathFleet, pathAdminOrders, pathAdminOrders + "/" + o.ID().String()}
}

// revalidate calls the hook and logs a failure instead of returning it.
func revalidate(ctx context.Context, hook ports.RevalidationHook, logger zerolog.Logger, paths []string) {
	if hook == nil {
		return
	}
	if err := hook.Revalidate(ctx, paths); err != nil {
		logger.Warn().Err(err).Strs("paths", paths).Msg("revalidation failed, ignoring")
	}
}
