package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/prefixer/internal/domain"
	"github.com/aalvaropc/prefixer/internal/ports"
)

type TransformSequence struct {
	sequences ports.SequenceLoader
	store     ports.RunStore
	log       *slog.Logger
	now       func() time.Time
}

type TransformOption func(*TransformSequence)

func WithLogger(l *slog.Logger) TransformOption {
	return func(uc *TransformSequence) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) TransformOption {
	return func(uc *TransformSequence) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewTransformSequence wires the use case. A nil store disables persistence.
func NewTransformSequence(sl ports.SequenceLoader, store ports.RunStore, opts ...TransformOption) *TransformSequence {
	uc := &TransformSequence{
		sequences: sl,
		store:     store,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the sequence at path, transforms it and saves the run.
// The returned id is empty when no store is configured.
func (uc *TransformSequence) Execute(ctx context.Context, path string) (domain.TransformRun, string, error) {
	seq, err := uc.sequences.LoadSequence(path)
	if err != nil {
		uc.log.Error("transform.failed", "stage", "load", "path", path, "err", err)
		return domain.TransformRun{}, "", err
	}
	return uc.run(ctx, seq, path)
}

// ExecuteValues transforms an inline sequence that has no backing file.
func (uc *TransformSequence) ExecuteValues(ctx context.Context, name string, values []int64) (domain.TransformRun, string, error) {
	return uc.run(ctx, domain.Sequence{Name: name, Values: values}, "")
}

func (uc *TransformSequence) run(ctx context.Context, seq domain.Sequence, path string) (domain.TransformRun, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.TransformRun{}, "", err
	}

	adder := domain.NewPrefixAdder(seq.Values)
	uc.log.Info("transform.start", "sequence", seq.Name, "path", path, "len", adder.Len())

	run := domain.TransformRun{
		SequenceName: seq.Name,
		SequencePath: path,
		Input:        adder.Values(),
		StartedAt:    uc.now(),
	}
	run.Output = adder.Transform()
	run.EndedAt = uc.now()

	if uc.store == nil {
		uc.log.Info("transform.ok", "sequence", seq.Name, "saved", false)
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		uc.log.Error("transform.failed", "stage", "save", "sequence", seq.Name, "err", err)
		return run, "", fmt.Errorf("save run: %w: %w", domain.ErrExecution, err)
	}

	uc.log.Info("transform.ok", "sequence", seq.Name, "saved_id", id)
	return run, id, nil
}
