package repositories

// FileRepository materializes file contents on a filesystem.
type FileRepository interface {
	// EnsureDir creates the directory chain when it does not exist yet.
	EnsureDir(path string) error

	// WriteFile truncates (or creates) the file and writes content.
	WriteFile(path, content string) error
}
