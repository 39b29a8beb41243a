package ports

import "github.com/aalvaropc/prefixer/internal/domain"

// RunStore persists transform runs for reproducibility.
type RunStore interface {
	SaveRun(run domain.TransformRun) (id string, err error)
}
