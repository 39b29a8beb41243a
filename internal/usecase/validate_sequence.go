package usecase

import (
	"context"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/ports"
)

type ValidateSequence struct {
	sequences ports.SequenceLoader
}

func NewValidateSequence(sl ports.SequenceLoader) *ValidateSequence {
	return &ValidateSequence{sequences: sl}
}

// Execute checks that the sequence at path loads and decodes, without transforming it.
func (uc *ValidateSequence) Execute(ctx context.Context, path string) (domain.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sequence{}, err
	}
	return uc.sequences.LoadSequence(path)
}
