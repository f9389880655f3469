package domain

// ChangeType represents the type of file change seen while watching.
type ChangeType int

const (
	// ChangeUpdated indicates the file was written or recreated.
	ChangeUpdated ChangeType = iota

	// ChangeDeleted indicates the file was removed or renamed away.
	ChangeDeleted
)

// String returns the string representation.
func (t ChangeType) String() string {
	switch t {
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChange is emitted by a file watcher.
type FileChange struct {
	Type ChangeType
	Path string
}
