package filesystem

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// BillyFileRepository implements repositories.FileRepository over a billy filesystem.
type BillyFileRepository struct {
	fs billy.Filesystem
}

// NewBillyFileRepository creates a repository backed by the host filesystem.
func NewBillyFileRepository() *BillyFileRepository {
	return NewBillyFileRepositoryWithFS(osfs.New(""))
}

// NewBillyFileRepositoryWithFS creates a repository backed by fs.
func NewBillyFileRepositoryWithFS(fs billy.Filesystem) *BillyFileRepository {
	return &BillyFileRepository{fs: fs}
}

func (it *BillyFileRepository) EnsureDir(path string) error {
	if err := it.fs.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

func (it *BillyFileRepository) WriteFile(path, content string) error {
	return util.WriteFile(it.fs, path, []byte(content), filePerm)
}
