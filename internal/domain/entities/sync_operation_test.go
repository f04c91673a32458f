//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

func TestParseSyncOperation(t *testing.T) {
	t.Parallel()

	t.Run("should accept pull and push regardless of case", func(t *testing.T) {
		t.Parallel()

		// given, when
		pull, pullErr := entities.ParseSyncOperation("pull")
		push, pushErr := entities.ParseSyncOperation(" PUSH ")

		// then
		require.NoError(t, pullErr)
		require.NoError(t, pushErr)
		assert.Equal(t, entities.SyncPull, pull)
		assert.Equal(t, entities.SyncPush, push)
	})

	t.Run("should reject empty and unsupported operations", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "fetch", "rebase"} {
			// given, when
			_, err := entities.ParseSyncOperation(raw)

			// then
			var validationErr *entities.ValidationError
			require.ErrorAs(t, err, &validationErr, raw)
			assert.Equal(t, "operation", validationErr.Field)
		}
	})
}
