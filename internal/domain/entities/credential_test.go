//go:build unit

package entities_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

func storeWithFallback(fallback string) *entities.CredentialStore {
	settings := entities.DefaultSettings()
	settings.GitHub.Token = fallback
	return entities.NewCredentialStore(settings)
}

func TestCredentialStoreResolve(t *testing.T) {
	t.Parallel()

	t.Run("should report no credential when nothing is configured", func(t *testing.T) {
		t.Parallel()

		// given
		store := storeWithFallback("")

		// when
		token, ok := store.Resolve("")

		// then
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("should resolve explicit over stored over fallback", func(t *testing.T) {
		t.Parallel()

		// given
		store := storeWithFallback("fallback")

		// when
		fromFallback, _ := store.Resolve("")
		require.NoError(t, store.Set("stored"))
		fromStore, _ := store.Resolve("   ")
		fromExplicit, _ := store.Resolve("explicit")

		// then
		assert.Equal(t, "fallback", fromFallback)
		assert.Equal(t, "stored", fromStore)
		assert.Equal(t, "explicit", fromExplicit)
	})

	t.Run("should keep the last written token", func(t *testing.T) {
		t.Parallel()

		// given
		store := storeWithFallback("")

		// when
		require.NoError(t, store.Set("first"))
		require.NoError(t, store.Set("second"))
		token, ok := store.Resolve("")

		// then
		assert.True(t, ok)
		assert.Equal(t, "second", token)
	})

	t.Run("should reject an empty token and keep the previous one", func(t *testing.T) {
		t.Parallel()

		// given
		store := storeWithFallback("")
		require.NoError(t, store.Set("kept"))

		// when
		err := store.Set("  ")
		token, _ := store.Resolve("")

		// then
		require.ErrorIs(t, err, entities.ErrEmptyToken)
		assert.Equal(t, "kept", token)
	})

	t.Run("should always resolve one of the written tokens under concurrent writes", func(t *testing.T) {
		t.Parallel()

		// given
		store := storeWithFallback("")
		written := map[string]bool{"a": true, "b": true, "c": true}
		var wg sync.WaitGroup

		// when
		for token := range written {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.Set(token)
			}()
		}
		wg.Wait()
		token, ok := store.Resolve("")

		// then
		assert.True(t, ok)
		assert.True(t, written[token])
	})
}
