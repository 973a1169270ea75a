package payment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAttempt_AlwaysApproves(t *testing.T) {
	g := New(0, 1.0, zerolog.Nop())
	for range 20 {
		require.NoError(t, g.Attempt(context.Background(), decimal.NewFromInt(10)))
	}
}

func TestAttempt_AlwaysDeclines(t *testing.T) {
	g := New(0, 0.0, zerolog.Nop())
	for range 20 {
		require.ErrorIs(t, g.Attempt(context.Background(), decimal.NewFromInt(10)), ErrDeclined)
	}
}

func TestAttempt_ContextCancelledDuringDelay(t *testing.T) {
	g := New(time.Minute, 1.0, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.Attempt(ctx, decimal.NewFromInt(10))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
