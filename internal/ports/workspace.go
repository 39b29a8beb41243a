package ports

import "github.com/aalvaropc/prefixer/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
