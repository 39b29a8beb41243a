package domain

// Sequence is a named, ordered list of integers loaded from a workspace.
type Sequence struct {
	Name   string
	Values []int64
}

// SequenceRef is a lightweight reference to a sequence file on disk.
type SequenceRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
