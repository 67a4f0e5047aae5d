package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_LevelParsing(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		level   string
		debugOn bool
		warnOn  bool
	}{
		{"debug", true, true},
		{"DEBUG", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"", false, true},
		{"loud", false, true},
	}

	for _, tc := range cases {
		t.Run("level "+tc.level, func(t *testing.T) {
			l := New(tc.level)
			require.Equal(t, tc.debugOn, l.Enabled(ctx, slog.LevelDebug))
			require.Equal(t, tc.warnOn, l.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestFromContext_RoundTripAndFallback(t *testing.T) {
	base := New("info").With("request_id", "r-1")

	ctx := IntoContext(context.Background(), base)
	require.Same(t, base, FromContext(ctx))

	require.Same(t, slog.Default(), FromContext(context.Background()))
}
