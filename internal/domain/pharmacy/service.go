package pharmacy

import (
	"context"

	"github.com/hms/hms/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validateFields(it *Item) error {
	if it.MedicineName == "" {
		return apperr.Required("medicine_name")
	}
	if it.Stock < 0 {
		return apperr.Validation("stock", "must not be negative")
	}
	if it.Price.IsNegative() {
		return apperr.Validation("price", "must not be negative")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, it *Item) error {
	if err := s.validateFields(it); err != nil {
		return err
	}
	return s.repo.Create(ctx, it)
}

func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, term string) ([]*Item, error) {
	return s.repo.Search(ctx, term)
}

func (s *Service) Update(ctx context.Context, it *Item) error {
	if err := s.validateFields(it); err != nil {
		return err
	}
	return s.repo.Update(ctx, it)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
