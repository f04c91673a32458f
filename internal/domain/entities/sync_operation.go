package entities

import "strings"

// SyncOperation is a synchronization applied to an existing working copy.
type SyncOperation string

const (
	// SyncPull fast-forwards the working copy from its configured remote.
	SyncPull SyncOperation = "pull"

	// SyncPush stages everything, commits and pushes to the configured remote.
	SyncPush SyncOperation = "push"
)

// ParseSyncOperation maps a caller-supplied value to a SyncOperation.
// Unsupported values fail with a ValidationError instead of being ignored.
func ParseSyncOperation(raw string) (SyncOperation, error) {
	switch op := SyncOperation(strings.ToLower(strings.TrimSpace(raw))); op {
	case SyncPull, SyncPush:
		return op, nil
	case "":
		return "", NewValidationError("operation", "must not be empty")
	default:
		return "", NewValidationError("operation", "%q is not supported (expected pull or push)", raw)
	}
}
