package pharmacy

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	// Search matches term as a substring of the medicine name. An empty term
	// returns every row in insertion order.
	Search(ctx context.Context, term string) ([]*Item, error)
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
