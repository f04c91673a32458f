package entities

// FileWriteStatus is the per-file outcome of a write batch.
type FileWriteStatus string

const (
	FileWriteSuccess FileWriteStatus = "success"
	FileWriteError   FileWriteStatus = "error"
)

// FileSpec is a target path (relative to the workspace root, or absolute) and its
// full replacement content.
type FileSpec struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileWriteResult reports what happened to one FileSpec of a batch.
type FileWriteResult struct {
	Path    string          `json:"path"`
	Status  FileWriteStatus `json:"status"`
	Message string          `json:"message,omitempty"`
}
