package ctxutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanceled(t *testing.T) {
	t.Parallel()

	require.NoError(t, Canceled(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Canceled(ctx), context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	require.ErrorIs(t, Canceled(ctx), context.DeadlineExceeded)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, Check(context.Background(), "zones"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Check(ctx, "zones")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "zones: context canceled", err.Error())
}
