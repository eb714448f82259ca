package billing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/report"
)

// -- Mock Repository --

type mockRepo struct {
	items  []*Billing
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, b *Billing) error {
	b.ID = m.nextID
	m.nextID++
	cp := *b
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Billing, error) {
	for _, e := range m.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("bill %d: %w", id, apperr.ErrNotFound)
}

func (m *mockRepo) Search(_ context.Context, nid string) ([]*Billing, error) {
	var out []*Billing
	for _, e := range m.items {
		if nid == "" || strings.Contains(e.PatientNationalID, nid) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BillDate != out[j].BillDate {
			return out[i].BillDate > out[j].BillDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, b *Billing) error {
	for i, e := range m.items {
		if e.ID == b.ID {
			cp := *b
			m.items[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("bill %d: %w", b.ID, apperr.ErrNotFound)
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("bill %d: %w", id, apperr.ErrNotFound)
}

func (m *mockRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func (m *mockRepo) TotalAmount(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.items {
		total = total.Add(e.Amount)
	}
	return total, nil
}

type mockDirectory map[string]string

func (d mockDirectory) NameByNationalID(_ context.Context, nid string) (string, error) {
	if name, ok := d[nid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%s: %w", nid, apperr.ErrNotFound)
}

const patientNID = "12345-1234567-1"

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	patients := mockDirectory{patientNID: "Ali Khan"}
	return NewService(repo, patients), repo
}

func validBilling() *Billing {
	return &Billing{
		PatientNationalID: patientNID,
		Amount:            decimal.NewFromFloat(1500.50),
		Details:           "Consultation and lab work",
	}
}

// -- Tests --

func TestCreate_Defaults(t *testing.T) {
	svc, _ := newTestService()
	b := validBilling()
	if err := svc.Create(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Patient != "Ali Khan" {
		t.Errorf("patient name not copied: %q", b.Patient)
	}
	if b.Status != StatusPending {
		t.Errorf("expected default status Pending, got %q", b.Status)
	}
	if b.BillDate != time.Now().Format("2006-01-02") {
		t.Errorf("expected bill date to default to today, got %q", b.BillDate)
	}
}

func TestCreate_NegativeAmount(t *testing.T) {
	svc, repo := newTestService()
	b := validBilling()
	b.Amount = decimal.NewFromInt(-5)
	if err := svc.Create(context.Background(), b); !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Error("row inserted despite negative amount")
	}
}

func TestCreate_ZeroAmountAllowed(t *testing.T) {
	svc, _ := newTestService()
	b := validBilling()
	b.Amount = decimal.Zero
	if err := svc.Create(context.Background(), b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreate_BadStatus(t *testing.T) {
	svc, _ := newTestService()
	b := validBilling()
	b.Status = "Overdue"
	if err := svc.Create(context.Background(), b); !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreate_UnknownPatient(t *testing.T) {
	svc, repo := newTestService()
	b := validBilling()
	b.PatientNationalID = "99999-9999999-9"
	err := svc.Create(context.Background(), b)
	if !errors.Is(err, apperr.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Error("row inserted despite dangling reference")
	}
}

func TestTotalAmount(t *testing.T) {
	svc, _ := newTestService()
	total, err := svc.TotalAmount(context.Background())
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("expected zero total for empty table, got %s", total)
	}
	for _, amt := range []float64{100, 250.25} {
		b := validBilling()
		b.Amount = decimal.NewFromFloat(amt)
		if err := svc.Create(context.Background(), b); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	total, err = svc.TotalAmount(context.Background())
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !total.Equal(decimal.NewFromFloat(350.25)) {
		t.Errorf("total = %s", total)
	}
}

func TestMarkPaid(t *testing.T) {
	svc, _ := newTestService()
	b := validBilling()
	if err := svc.Create(context.Background(), b); err != nil {
		t.Fatalf("create: %v", err)
	}
	b.Status = StatusPaid
	if err := svc.Update(context.Background(), b); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.Get(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusPaid {
		t.Errorf("status = %q", got.Status)
	}
}

func TestReceipt_RendersPDF(t *testing.T) {
	svc, _ := newTestService()
	b := validBilling()
	if err := svc.Create(context.Background(), b); err != nil {
		t.Fatalf("create: %v", err)
	}
	pdf, filename, err := svc.Receipt(context.Background(), b.ID,
		report.Hospital{Name: "City Hospital"}, "Rs. ")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	want := fmt.Sprintf("Receipt_Bill_%d_%s.pdf", b.ID, patientNID)
	if filename != want {
		t.Errorf("filename = %q, want %q", filename, want)
	}
}

func TestReceipt_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, _, err := svc.Receipt(context.Background(), 42, report.Hospital{}, "$")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
