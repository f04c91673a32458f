package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
	"github.com/rios0rios0/workbench/internal/infrastructure/metrics"
)

// WriteFiles is the interface for the file materializer.
type WriteFiles interface {
	Execute(ctx context.Context, files []entities.FileSpec) []entities.FileWriteResult
}

// WriteFilesCommand writes a batch of files, isolating failures per file:
// every spec is attempted and gets its own result, in input order.
type WriteFilesCommand struct {
	files    repositories.FileRepository
	settings *entities.Settings
}

// NewWriteFilesCommand creates a new WriteFilesCommand.
func NewWriteFilesCommand(files repositories.FileRepository, settings *entities.Settings) *WriteFilesCommand {
	return &WriteFilesCommand{
		files:    files,
		settings: settings,
	}
}

// Execute writes every spec and returns one result per spec.
func (it *WriteFilesCommand) Execute(_ context.Context, files []entities.FileSpec) []entities.FileWriteResult {
	results := make([]entities.FileWriteResult, 0, len(files))

	for _, spec := range files {
		if err := it.write(spec); err != nil {
			logger.Warnf("Failed to write %q: %v", spec.Path, err)
			metrics.FileWritten(metrics.OutcomeFailure)
			results = append(results, entities.FileWriteResult{
				Path:    spec.Path,
				Status:  entities.FileWriteError,
				Message: err.Error(),
			})
			continue
		}

		metrics.FileWritten(metrics.OutcomeSuccess)
		results = append(results, entities.FileWriteResult{
			Path:   spec.Path,
			Status: entities.FileWriteSuccess,
		})
	}

	logger.Infof("Materialized %d file(s)", len(results))
	return results
}

func (it *WriteFilesCommand) write(spec entities.FileSpec) error {
	if strings.TrimSpace(spec.Path) == "" {
		return entities.NewValidationError("path", "must not be empty")
	}

	// a bare filename has no parent to create
	if parent := filepath.Dir(spec.Path); parent != "." {
		if err := it.files.EnsureDir(it.resolve(parent)); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	if err := it.files.WriteFile(it.resolve(spec.Path), spec.Content); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// resolve anchors relative paths at the workspace root.
func (it *WriteFilesCommand) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(it.settings.Workspace.Root, path)
}
