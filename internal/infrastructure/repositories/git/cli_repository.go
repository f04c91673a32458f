package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// CLIRepository implements repositories.RepositoryBackend by running the git binary.
// Prompts are disabled so a missing credential fails instead of hanging until the timeout.
type CLIRepository struct {
	binary string
}

// NewCLIRepository creates a CLIRepository using the configured git binary.
func NewCLIRepository(settings *entities.Settings) *CLIRepository {
	return &CLIRepository{binary: settings.Git.Binary}
}

func (it *CLIRepository) Name() string { return entities.GitBackendCLI }

func (it *CLIRepository) Clone(ctx context.Context, rawURL, dir string) (string, error) {
	return it.run(ctx, filepath.Dir(dir), "clone", "--", rawURL, dir)
}

func (it *CLIRepository) Pull(ctx context.Context, dir string) (string, error) {
	return it.run(ctx, dir, "pull", "--ff-only")
}

func (it *CLIRepository) Push(ctx context.Context, dir string) (string, error) {
	return it.run(ctx, dir, "push", remoteName, "HEAD")
}

func (it *CLIRepository) StageAll(ctx context.Context, dir string) error {
	_, err := it.run(ctx, dir, "add", "-A")
	return err
}

func (it *CLIRepository) Commit(ctx context.Context, dir, message string) (string, error) {
	// exit 0 means the index matches HEAD
	if _, err := it.run(ctx, dir, "diff", "--cached", "--quiet"); err == nil {
		return "", entities.ErrNothingToCommit
	} else if !isExitError(err) {
		return "", err
	}
	return it.run(ctx, dir, "commit", "-m", message)
}

func (it *CLIRepository) ConfigureIdentity(ctx context.Context, dir, name, email string) error {
	if _, err := it.run(ctx, dir, "config", "user.name", name); err != nil {
		return err
	}
	_, err := it.run(ctx, dir, "config", "user.email", email)
	return err
}

func (it *CLIRepository) RemoteURL(ctx context.Context, dir string) (string, error) {
	output, err := it.run(ctx, dir, "remote", "get-url", remoteName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (it *CLIRepository) SetRemoteURL(ctx context.Context, dir, rawURL string) error {
	_, err := it.run(ctx, dir, "remote", "set-url", remoteName, rawURL)
	return err
}

// run executes git in dir. On success it returns stdout and stderr combined
// (git reports progress on stderr); on failure it returns the error stream.
func (it *CLIRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running git %s in %s", args[0], dir)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stderr.String(), fmt.Errorf("git %s: %w", args[0], ctxErr)
		}
		return stderr.String(), fmt.Errorf("git %s: %w", args[0], err)
	}

	return strings.TrimSpace(stdout.String() + "\n" + stderr.String()), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
