//go:build unit

package entities_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("should include the captured output of a sync error verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.SyncError{
			Operation: "push",
			Output:    "remote: Invalid username or password.\n",
			Cause:     errors.New("exit status 128"),
		}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "git push failed: exit status 128: remote: Invalid username or password.", message)
	})

	t.Run("should describe an auth error by its upstream description or as unknown", func(t *testing.T) {
		t.Parallel()

		// given, when, then
		assert.Equal(t, "bad code", (&entities.AuthError{Description: "bad code"}).Error())
		assert.Equal(t, "Unknown", (&entities.AuthError{}).Error())
	})

	t.Run("should unwrap the cause of an execution error", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.ExecutionError{TimedOut: true, Cause: context.DeadlineExceeded}

		// when, then
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "timed out")
	})
}
