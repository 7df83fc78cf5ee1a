package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/adapter"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short value untouched", in: "sprint", max: 10, want: "sprint"},
		{name: "long value truncated", in: "quarterly planning marathon", max: 12, want: "quarterly..."},
		{name: "tiny budget keeps prefix", in: "sprint", max: 2, want: "sp"},
		{name: "multibyte stays on rune boundaries", in: "Весенний спринт команды", max: 12, want: "Весенний ..."},
		{name: "exact multibyte fit untouched", in: "спринт", max: 6, want: "спринт"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestHumanizeTransportError_MatchesWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("load calendar: %w", adapter.ErrNoConnection)
	assert.Equal(t, adapter.ErrNoConnection.Error(), humanizeTransportError(wrapped))

	// Anything else passes through verbatim.
	assert.Equal(t, assert.AnError.Error(), humanizeTransportError(assert.AnError))
}

func TestSurfaceError(t *testing.T) {
	t.Run("expired session raises the sign-out message", func(t *testing.T) {
		wrapped := fmt.Errorf("refresh standings: %w", adapter.ErrSessionExpired)

		text, cmd := surfaceError(wrapped)

		assert.Equal(t, wrapped.Error(), text)
		require.NotNil(t, cmd)
		assert.Equal(t, sessionExpiredMsg{}, cmd())
	})

	t.Run("transport errors stay inline", func(t *testing.T) {
		text, cmd := surfaceError(adapter.ErrNoConnection)

		assert.Equal(t, adapter.ErrNoConnection.Error(), text)
		assert.Nil(t, cmd)
	})
}
