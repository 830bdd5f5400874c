package repositories

import "context"

// Source supplies the records behind one console table.
type Source[R any] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (R, error)
}

// Writer is implemented by sources that accept edits.
type Writer[R any] interface {
	Source[R]
	// Create stores build(id) under a newly assigned id.
	Create(ctx context.Context, build func(id string) R) (R, error)
	// Update applies change to record id atomically.
	Update(ctx context.Context, id string, change func(R) R) (R, error)
}
