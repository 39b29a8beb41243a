package domain

import "time"

// TransformRun records a single application of the prefix transform.
type TransformRun struct {
	SequenceName string `json:"sequence_name"`
	SequencePath string `json:"sequence_path,omitempty"`

	Input  []int64 `json:"input"`
	Output []int64 `json:"output"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Duration is the wall time between StartedAt and EndedAt, or 0 if either is unset.
func (r TransformRun) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
