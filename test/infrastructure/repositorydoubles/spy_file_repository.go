//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// SpyFileRepository implements repositories.FileRepository in memory.
// Paths listed in DirErrs or WriteErrs fail with the configured error.
type SpyFileRepository struct {
	DirErrs   map[string]error
	WriteErrs map[string]error

	EnsuredDirs []string
	Written     map[string]string
	WriteOrder  []string
}

var _ repositories.FileRepository = (*SpyFileRepository)(nil)

func (s *SpyFileRepository) EnsureDir(path string) error {
	s.EnsuredDirs = append(s.EnsuredDirs, path)
	return s.DirErrs[path]
}

func (s *SpyFileRepository) WriteFile(path, content string) error {
	s.WriteOrder = append(s.WriteOrder, path)
	if err := s.WriteErrs[path]; err != nil {
		return err
	}
	if s.Written == nil {
		s.Written = make(map[string]string)
	}
	s.Written[path] = content
	return nil
}
