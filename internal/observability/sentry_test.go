package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSentry(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		flush, err := InitSentry("", "test", "dev")
		require.NoError(t, err)
		assert.NotPanics(t, flush)
		assert.NotPanics(t, func() { CaptureErr(errors.New("dropped")) })
	})

	t.Run("Bad DSN", func(t *testing.T) {
		flush, err := InitSentry("not a dsn", "test", "dev")
		assert.Error(t, err)
		assert.NotNil(t, flush)
	})
}
