// Package ctxutil provides context utility functions.
package ctxutil

import (
	"context"

	"github.com/mrz1836/worldclock/internal/errors"
)

// Canceled returns the context error if ctx is done, nil otherwise.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// Check is Canceled with the operation name attached, for command entry points.
func Check(ctx context.Context, op string) error {
	return errors.Wrap(ctx.Err(), op)
}
