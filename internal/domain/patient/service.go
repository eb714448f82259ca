package patient

import (
	"context"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateFields(p *Patient) error {
	if p.Name == "" {
		return apperr.Required("name")
	}
	if p.NationalID == "" {
		return apperr.Required("national_id")
	}
	if !validate.NationalID(p.NationalID) {
		return apperr.Validation("national_id", "must match NNNNN-NNNNNNN-N")
	}
	if p.Phone == "" {
		return apperr.Required("phone")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 120) {
		return apperr.Validation("age", "must be between 0 and 120")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := s.validateFields(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, term string) ([]*Patient, error) {
	return s.repo.Search(ctx, term)
}

// Update replaces every mutable field of the row addressed by p.ID.
func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validateFields(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// NameByNationalID resolves the current name for a national ID. Dependent
// entity managers call this when copying the name into their denormalized
// field at write time.
func (s *Service) NameByNationalID(ctx context.Context, nationalID string) (string, error) {
	p, err := s.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
