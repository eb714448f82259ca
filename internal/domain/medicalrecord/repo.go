package medicalrecord

import "context"

type Repository interface {
	Create(ctx context.Context, m *MedicalRecord) error
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	// Search filters by exact patient national ID; an empty argument returns
	// every row. Rows come back newest visit first.
	Search(ctx context.Context, patientNationalID string) ([]*MedicalRecord, error)
	Update(ctx context.Context, m *MedicalRecord) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
