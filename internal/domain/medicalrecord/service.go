package medicalrecord

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (s *Service) validateFields(m *MedicalRecord) error {
	if m.PatientNationalID == "" {
		return apperr.Required("patient_national_id")
	}
	if !validate.NationalID(m.PatientNationalID) {
		return apperr.Validation("patient_national_id", "must match NNNNN-NNNNNNN-N")
	}
	if m.Doctor == "" {
		return apperr.Required("doctor")
	}
	if m.Diagnosis == "" {
		return apperr.Required("diagnosis")
	}
	if m.VisitDate == "" {
		return apperr.Required("visit_date")
	}
	if _, err := time.Parse("2006-01-02", m.VisitDate); err != nil {
		return apperr.Validation("visit_date", "must be YYYY-MM-DD")
	}
	return nil
}

func (s *Service) resolvePatient(ctx context.Context, m *MedicalRecord) error {
	name, err := s.patients.NameByNationalID(ctx, m.PatientNationalID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("patient %s: %w", m.PatientNationalID, apperr.ErrReferenceNotFound)
		}
		return err
	}
	m.Patient = name
	return nil
}

func (s *Service) Create(ctx context.Context, m *MedicalRecord) error {
	if err := s.validateFields(m); err != nil {
		return err
	}
	if err := s.resolvePatient(ctx, m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, patientNationalID string) ([]*MedicalRecord, error) {
	return s.repo.Search(ctx, patientNationalID)
}

func (s *Service) Update(ctx context.Context, m *MedicalRecord) error {
	if err := s.validateFields(m); err != nil {
		return err
	}
	if err := s.resolvePatient(ctx, m); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Report renders a patient's visit history as a PDF, newest visit first.
// The patient must exist in the directory; an empty history still renders.
func (s *Service) Report(ctx context.Context, nationalID string, hospital report.Hospital) ([]byte, string, error) {
	if !validate.NationalID(nationalID) {
		return nil, "", apperr.Validation("national_id", "must match NNNNN-NNNNNNN-N")
	}
	name, err := s.patients.NameByNationalID(ctx, nationalID)
	if err != nil {
		return nil, "", err
	}

	records, err := s.repo.Search(ctx, nationalID)
	if err != nil {
		return nil, "", err
	}

	meta := []string{
		fmt.Sprintf("Patient: %s", name),
		fmt.Sprintf("National ID: %s", nationalID),
		fmt.Sprintf("Total Visits: %d", len(records)),
		fmt.Sprintf("Generated: %s", time.Now().Format("January 2, 2006")),
	}
	headers := []string{"Date", "Doctor", "Diagnosis", "Treatment", "Prescription"}
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		rows = append(rows, []string{m.VisitDate, m.Doctor, m.Diagnosis, m.Treatment, m.Prescription})
	}

	pdf, err := report.TabularReport(hospital.Name+" - Medical Report", meta, headers, rows)
	if err != nil {
		return nil, "", err
	}
	return pdf, report.Filename("Medical Report", name, nationalID), nil
}

// Analytics is the chart-ready view of one patient's history.
type Analytics struct {
	MonthlyVisits []report.PeriodCount   `json:"monthly_visits"`
	TopDiagnoses  []report.CategoryCount `json:"top_diagnoses"`
}

// Analytics aggregates a patient's records into monthly visit counts and the
// ten most frequent diagnoses. Rendering is left to the caller.
func (s *Service) Analytics(ctx context.Context, nationalID string) (*Analytics, error) {
	if !validate.NationalID(nationalID) {
		return nil, apperr.Validation("national_id", "must match NNNNN-NNNNNNN-N")
	}
	if _, err := s.patients.NameByNationalID(ctx, nationalID); err != nil {
		return nil, err
	}
	items, err := s.repo.Search(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	records := make([]report.Record, 0, len(items))
	for _, m := range items {
		records = append(records, report.Record{
			"visit_date": m.VisitDate,
			"diagnosis":  m.Diagnosis,
		})
	}
	return &Analytics{
		MonthlyVisits: report.ByMonth(records, "visit_date"),
		TopDiagnoses:  report.ByCategory(records, "diagnosis", 10),
	}, nil
}
