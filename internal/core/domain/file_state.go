package domain

import "time"

// Digest is the hex encoded content digest of a file.
type Digest string

// ChangeState is the tri-state comparison of a file against its persisted digest.
type ChangeState uint8

const (
	// FileFirstSeen marks a file with no persisted digest. It was discovered during this session.
	FileFirstSeen ChangeState = iota
	// FileUnchanged marks a file whose current digest equals the persisted one.
	FileUnchanged
	// FileChanged marks a file whose digest differs from the persisted one or that could not be read.
	FileChanged
)

// String returns the lowercase name of the state.
func (s ChangeState) String() string {
	switch s {
	case FileUnchanged:
		return "unchanged"
	case FileChanged:
		return "changed"
	default:
		return "first"
	}
}

// FileRecord is the session view of one project file.
type FileRecord struct {
	Path   string
	Digest Digest
	State  ChangeState
}

// FileTable is the in-memory global file-state table keyed by absolute path.
type FileTable map[string]*FileRecord

// Unchanged reports whether path is known and confirmed unchanged since the last session.
func (t FileTable) Unchanged(path string) bool {
	rec, ok := t[path]
	return ok && rec.State == FileUnchanged
}

// GlobalFileState is the persisted global blob shared by every test file.
type GlobalFileState struct {
	Libraries LibraryVersionSet `json:"libraries"`
	Files     map[string]Digest `json:"files"`
	Session   string            `json:"session,omitzero"`
	UpdatedAt time.Time         `json:"updated_at,omitzero"`
}

// NewGlobalFileState returns an empty global state.
func NewGlobalFileState() *GlobalFileState {
	return &GlobalFileState{
		Libraries: LibraryVersionSet{},
		Files:     make(map[string]Digest),
	}
}
