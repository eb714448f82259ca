// Package dashboard aggregates entity counts and billing revenue into the
// console's landing-page summary.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// Counter reports how many rows an entity manager holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// RevenueSource exposes the billing totals the summary needs.
type RevenueSource interface {
	Counter
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// Summary is the dashboard payload.
type Summary struct {
	Patients       int             `json:"patients"`
	Doctors        int             `json:"doctors"`
	Appointments   int             `json:"appointments"`
	MedicalRecords int             `json:"medical_records"`
	Bills          int             `json:"bills"`
	Medicines      int             `json:"medicines"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

type Service struct {
	patients       Counter
	doctors        Counter
	appointments   Counter
	medicalRecords Counter
	billing        RevenueSource
	pharmacy       Counter
}

func NewService(patients, doctors, appointments, medicalRecords Counter, billing RevenueSource, pharmacy Counter) *Service {
	return &Service{
		patients:       patients,
		doctors:        doctors,
		appointments:   appointments,
		medicalRecords: medicalRecords,
		billing:        billing,
		pharmacy:       pharmacy,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		err error
	)
	if out.Patients, err = s.patients.Count(ctx); err != nil {
		return nil, err
	}
	if out.Doctors, err = s.doctors.Count(ctx); err != nil {
		return nil, err
	}
	if out.Appointments, err = s.appointments.Count(ctx); err != nil {
		return nil, err
	}
	if out.MedicalRecords, err = s.medicalRecords.Count(ctx); err != nil {
		return nil, err
	}
	if out.Bills, err = s.billing.Count(ctx); err != nil {
		return nil, err
	}
	if out.Medicines, err = s.pharmacy.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.billing.TotalAmount(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}
