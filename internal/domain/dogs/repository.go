package dogs

import "context"

type Repository interface {
	List(ctx context.Context, f Filter) ([]Dog, error)
	GetByID(ctx context.Context, id int64) (Dog, error)
}
