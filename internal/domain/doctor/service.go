package doctor

import (
	"context"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	repo        Repository
	departments map[string]bool
}

// NewService builds a doctor service. When departments is non-empty, the
// department field of every write must be one of its members.
func NewService(repo Repository, departments []string) *Service {
	set := make(map[string]bool, len(departments))
	for _, d := range departments {
		set[d] = true
	}
	return &Service{repo: repo, departments: set}
}

func (s *Service) validateFields(d *Doctor) error {
	if d.Name == "" {
		return apperr.Required("name")
	}
	if d.NationalID == "" {
		return apperr.Required("national_id")
	}
	if !validate.NationalID(d.NationalID) {
		return apperr.Validation("national_id", "must match NNNNN-NNNNNNN-N")
	}
	if d.Department == "" {
		return apperr.Required("department")
	}
	if len(s.departments) > 0 && !s.departments[d.Department] {
		return apperr.Validation("department", "is not a recognized department")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if err := s.validateFields(d); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, term string) ([]*Doctor, error) {
	return s.repo.Search(ctx, term)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if err := s.validateFields(d); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// NameByNationalID resolves the current name for a national ID, for
// dependent entity managers that snapshot the name at write time.
func (s *Service) NameByNationalID(ctx context.Context, nationalID string) (string, error) {
	d, err := s.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}
