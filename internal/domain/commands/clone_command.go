package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
	"github.com/rios0rios0/workbench/internal/infrastructure/metrics"
)

const operationClone = "clone"

// Clone is the interface for the clone operation.
type Clone interface {
	Execute(ctx context.Context, opts CloneOptions) (*CloneResult, error)
}

// CloneOptions holds the inputs of a single clone.
type CloneOptions struct {
	URL   string
	Token string // optional, takes precedence over the stored credential
}

// CloneResult describes the working copy after the clone.
type CloneResult struct {
	Name           string
	Path           string
	AlreadyPresent bool
}

// CloneCommand materializes a GitHub repository as a working copy under the workspace root.
// It is idempotent per derived name: an existing directory is never recloned.
type CloneCommand struct {
	backend     repositories.RepositoryBackend
	credentials *entities.CredentialStore
	settings    *entities.Settings
}

// NewCloneCommand creates a new CloneCommand.
func NewCloneCommand(
	backend repositories.RepositoryBackend,
	credentials *entities.CredentialStore,
	settings *entities.Settings,
) *CloneCommand {
	return &CloneCommand{
		backend:     backend,
		credentials: credentials,
		settings:    settings,
	}
}

// Execute clones opts.URL, embedding the resolved credential, unless the target already exists.
func (it *CloneCommand) Execute(ctx context.Context, opts CloneOptions) (*CloneResult, error) {
	ref, err := entities.NewRepositoryReference(opts.URL)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(it.settings.Workspace.Root, ref.Name)
	result := &CloneResult{Name: ref.Name, Path: dir}
	start := time.Now()

	if rootErr := os.MkdirAll(it.settings.Workspace.Root, 0o755); rootErr != nil {
		return nil, fmt.Errorf("failed to create workspace root: %w", rootErr)
	}

	// the directory is claimed before cloning so a concurrent clone of the same name
	// sees it as present and never touches a working copy it did not create
	if mkdirErr := os.Mkdir(dir, 0o755); mkdirErr != nil {
		if !os.IsExist(mkdirErr) {
			return nil, fmt.Errorf("failed to create %s: %w", dir, mkdirErr)
		}
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", dir, statErr)
		}
		if !info.IsDir() {
			return nil, entities.NewValidationError("repo_url", "%s exists and is not a directory", dir)
		}
		logger.Infof("Repository %q already present at %s, skipping clone", ref.Name, dir)
		metrics.GitOperation(operationClone, metrics.OutcomeSkipped, start)
		result.AlreadyPresent = true
		return result, nil
	}

	token, _ := it.credentials.Resolve(opts.Token)
	cloneURL := entities.EmbedCredential(ref.URL, token)

	// only the clone timeout cancels; a dropped caller does not abort a clone midway
	cloneCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), it.settings.Git.CloneTimeout)
	defer cancel()

	logger.Infof("Cloning %s into %s (%s backend)", entities.RedactURL(cloneURL), dir, it.backend.Name())
	output, err := it.backend.Clone(cloneCtx, cloneURL, dir)
	if err != nil {
		outcome := metrics.OutcomeFailure
		if cloneCtx.Err() != nil {
			outcome = metrics.OutcomeTimeout
		}
		metrics.GitOperation(operationClone, outcome, start)

		// this call created dir, so a partial working copy is ours to remove
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			logger.Warnf("Failed to remove partial clone at %s: %v", dir, removeErr)
		}

		syncErr := &entities.SyncError{
			Operation: operationClone,
			Output:    redact(output, token),
			Cause:     redactError(err, token),
		}
		logger.Errorf("Clone of %q failed: %v", ref.Name, syncErr)
		return nil, syncErr
	}

	metrics.GitOperation(operationClone, metrics.OutcomeSuccess, start)
	logger.Infof("Cloned %q in %s", ref.Name, time.Since(start).Round(time.Millisecond))
	return result, nil
}
