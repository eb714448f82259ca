package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type fixedCounter int

func (f fixedCounter) Count(context.Context) (int, error) { return int(f), nil }

type fixedRevenue struct {
	bills int
	total decimal.Decimal
}

func (f fixedRevenue) Count(context.Context) (int, error) { return f.bills, nil }
func (f fixedRevenue) TotalAmount(context.Context) (decimal.Decimal, error) {
	return f.total, nil
}

type failingCounter struct{}

func (failingCounter) Count(context.Context) (int, error) {
	return 0, errors.New("store unavailable")
}

func TestSummary(t *testing.T) {
	svc := NewService(
		fixedCounter(10), fixedCounter(3), fixedCounter(7), fixedCounter(15),
		fixedRevenue{bills: 4, total: decimal.NewFromFloat(1234.56)},
		fixedCounter(42),
	)
	s, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Patients != 10 || s.Doctors != 3 || s.Appointments != 7 ||
		s.MedicalRecords != 15 || s.Bills != 4 || s.Medicines != 42 {
		t.Errorf("counts = %+v", s)
	}
	if !s.TotalRevenue.Equal(decimal.NewFromFloat(1234.56)) {
		t.Errorf("total revenue = %s", s.TotalRevenue)
	}
}

func TestSummary_PropagatesError(t *testing.T) {
	svc := NewService(
		failingCounter{}, fixedCounter(0), fixedCounter(0), fixedCounter(0),
		fixedRevenue{}, fixedCounter(0),
	)
	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatal("expected error from failing counter")
	}
}
