package repository

import "context"

// Repository defines the interface for a generic repository that can manage resources.
// The catalog is append-only: rows are created once and listed many times.
type Repository interface {
	Create(ctx context.Context, resource Resource) (result Resource, err error)
	List(ctx context.Context, query Query) (result []Resource, err error)
}

// Resource represents a generic resource that can be managed by the repository.
type Resource interface {
	InitMeta()
}
