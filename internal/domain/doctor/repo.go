package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Doctor, error)
	// Search matches term as a substring of name or national ID. An empty
	// term returns every row in insertion order.
	Search(ctx context.Context, term string) ([]*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
