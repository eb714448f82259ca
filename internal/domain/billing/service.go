package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/report"
	"github.com/hms/hms/internal/platform/validate"
)

// PatientDirectory resolves the current patient name for a national ID.
type PatientDirectory interface {
	NameByNationalID(ctx context.Context, nationalID string) (string, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

var validStatus = map[string]bool{
	StatusPending: true,
	StatusPaid:    true,
}

func (s *Service) validateFields(b *Billing) error {
	if b.PatientNationalID == "" {
		return apperr.Required("patient_national_id")
	}
	if !validate.NationalID(b.PatientNationalID) {
		return apperr.Validation("patient_national_id", "must match NNNNN-NNNNNNN-N")
	}
	if b.Amount.IsNegative() {
		return apperr.Validation("amount", "must not be negative")
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if !validStatus[b.Status] {
		return apperr.Validation("status", "must be Pending or Paid")
	}
	if b.BillDate == "" {
		b.BillDate = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", b.BillDate); err != nil {
		return apperr.Validation("bill_date", "must be YYYY-MM-DD")
	}
	return nil
}

func (s *Service) resolvePatient(ctx context.Context, b *Billing) error {
	name, err := s.patients.NameByNationalID(ctx, b.PatientNationalID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("patient %s: %w", b.PatientNationalID, apperr.ErrReferenceNotFound)
		}
		return err
	}
	b.Patient = name
	return nil
}

func (s *Service) Create(ctx context.Context, b *Billing) error {
	if err := s.validateFields(b); err != nil {
		return err
	}
	if err := s.resolvePatient(ctx, b); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int64) (*Billing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, patientNationalID string) ([]*Billing, error) {
	return s.repo.Search(ctx, patientNationalID)
}

func (s *Service) Update(ctx context.Context, b *Billing) error {
	if err := s.validateFields(b); err != nil {
		return err
	}
	if err := s.resolvePatient(ctx, b); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalAmount(ctx)
}

// Receipt renders the bill as a PDF receipt against the hospital identity.
func (s *Service) Receipt(ctx context.Context, id int64, hospital report.Hospital, currency string) ([]byte, string, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := report.Receipt(report.ReceiptData{
		BillID:     b.ID,
		Patient:    b.Patient,
		NationalID: b.PatientNationalID,
		BillDate:   b.BillDate,
		Status:     b.Status,
		Details:    b.Details,
		Amount:     b.Amount,
		Currency:   currency,
		Hospital:   hospital,
	})
	if err != nil {
		return nil, "", err
	}
	name := report.Filename("Receipt", fmt.Sprintf("Bill_%d", b.ID), b.PatientNationalID)
	return pdf, name, nil
}
