package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/validate"
)

// PatientDirectory resolves the current patient name for a national ID.
type PatientDirectory interface {
	NameByNationalID(ctx context.Context, nationalID string) (string, error)
}

// DoctorDirectory resolves the current doctor name for a national ID.
type DoctorDirectory interface {
	NameByNationalID(ctx context.Context, nationalID string) (string, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	doctors  DoctorDirectory
}

func NewService(repo Repository, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

var validStatus = map[string]bool{
	StatusScheduled: true,
	StatusConfirmed: true,
	StatusCancelled: true,
}

func (s *Service) validateFields(a *Appointment) error {
	if a.PatientNationalID == "" {
		return apperr.Required("patient_national_id")
	}
	if !validate.NationalID(a.PatientNationalID) {
		return apperr.Validation("patient_national_id", "must match NNNNN-NNNNNNN-N")
	}
	if a.DoctorNationalID == "" {
		return apperr.Required("doctor_national_id")
	}
	if !validate.NationalID(a.DoctorNationalID) {
		return apperr.Validation("doctor_national_id", "must match NNNNN-NNNNNNN-N")
	}
	if a.Date == "" {
		return apperr.Required("date")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return apperr.Validation("date", "must be YYYY-MM-DD")
	}
	if a.Time == "" {
		return apperr.Required("time")
	}
	if !validTime(a.Time) {
		return apperr.Validation("time", "must be HH:MM or HH:MM:SS")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatus[a.Status] {
		return apperr.Validation("status", "must be Scheduled, Confirmed, or Cancelled")
	}
	return nil
}

func validTime(s string) bool {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// resolveNames copies the current patient and doctor names into the row.
// A national ID with no matching directory entry aborts the write; nothing
// is inserted or updated for a dangling reference.
func (s *Service) resolveNames(ctx context.Context, a *Appointment) error {
	name, err := s.patients.NameByNationalID(ctx, a.PatientNationalID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("patient %s: %w", a.PatientNationalID, apperr.ErrReferenceNotFound)
		}
		return err
	}
	a.Patient = name

	name, err = s.doctors.NameByNationalID(ctx, a.DoctorNationalID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("doctor %s: %w", a.DoctorNationalID, apperr.ErrReferenceNotFound)
		}
		return err
	}
	a.Doctor = name
	return nil
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if err := s.validateFields(a); err != nil {
		return err
	}
	if err := s.resolveNames(ctx, a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, patientNationalID, date string) ([]*Appointment, error) {
	return s.repo.Search(ctx, patientNationalID, date)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if err := s.validateFields(a); err != nil {
		return err
	}
	if err := s.resolveNames(ctx, a); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
