package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Patient, error)
	// Search matches term as a substring of name, national ID, or phone.
	// An empty term returns every row in insertion order.
	Search(ctx context.Context, term string) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
