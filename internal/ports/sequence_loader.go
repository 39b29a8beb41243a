package ports

import "github.com/aalvaropc/prefixer/internal/domain"

// SequenceLoader loads sequences from a source (e.g., filesystem).
type SequenceLoader interface {
	LoadSequence(path string) (domain.Sequence, error)
	ListSequences(root string) ([]domain.SequenceRef, error)
}
