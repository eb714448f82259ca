package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, b *Billing) error
	GetByID(ctx context.Context, id int64) (*Billing, error)
	// Search filters by patient national ID substring; an empty term returns
	// every row. Rows come back newest bill first.
	Search(ctx context.Context, patientNationalID string) ([]*Billing, error)
	Update(ctx context.Context, b *Billing) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	// TotalAmount sums every bill, zero when the table is empty.
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}
