package interfaces

import "context"

// IWorkRepository is the read-only view of the works table owned by the project module.
type IWorkRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}
