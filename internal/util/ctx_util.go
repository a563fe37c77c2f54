package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

// GetCallerFromContext returns the identity the middleware resolved for this
// request, or nil when resolution did not run.
func GetCallerFromContext(ctx context.Context) *model.Caller {
	if v := ctx.Value(constants.CallerKey); v != nil {
		caller := v.(model.Caller)
		return &caller
	}
	return nil
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		return v.(string)
	}
	return "unknown"
}
