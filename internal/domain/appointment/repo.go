package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	// Search filters by patient national ID substring and/or exact date.
	// Empty arguments mean no filter on that axis; both empty returns every
	// row in insertion order.
	Search(ctx context.Context, patientNationalID, date string) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
