package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hms/hms/internal/platform/apperr"
)

// -- Mock Repository --

type mockRepo struct {
	items  []*Patient
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	for _, e := range m.items {
		if e.NationalID == p.NationalID {
			return fmt.Errorf("national ID %s already exists: %w", p.NationalID, apperr.ErrDuplicateKey)
		}
	}
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	for _, e := range m.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("patient %d: %w", id, apperr.ErrNotFound)
}

func (m *mockRepo) GetByNationalID(_ context.Context, nid string) (*Patient, error) {
	for _, e := range m.items {
		if e.NationalID == nid {
			cp := *e
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("patient %s: %w", nid, apperr.ErrNotFound)
}

func (m *mockRepo) Search(_ context.Context, term string) ([]*Patient, error) {
	var out []*Patient
	for _, e := range m.items {
		if term == "" || strings.Contains(e.Name, term) ||
			strings.Contains(e.NationalID, term) || strings.Contains(e.Phone, term) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	for i, e := range m.items {
		if e.ID == p.ID {
			cp := *p
			m.items[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("patient %d: %w", p.ID, apperr.ErrNotFound)
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("patient %d: %w", id, apperr.ErrNotFound)
}

func (m *mockRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func validPatient() *Patient {
	return &Patient{Name: "Ali Khan", NationalID: "12345-1234567-1", Phone: "0300-1111111"}
}

// -- Tests --

func TestCreate(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected surrogate id to be assigned")
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	svc, _ := newTestService()
	cases := []struct {
		name string
		p    *Patient
	}{
		{"missing name", &Patient{NationalID: "12345-1234567-1", Phone: "0300-1"}},
		{"missing national_id", &Patient{Name: "Ali", Phone: "0300-1"}},
		{"missing phone", &Patient{Name: "Ali", NationalID: "12345-1234567-1"}},
	}
	for _, tc := range cases {
		err := svc.Create(context.Background(), tc.p)
		if !apperr.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreate_BadNationalID(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	p.NationalID = "1234-1234567-1"
	if err := svc.Create(context.Background(), p); !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreate_AgeBounds(t *testing.T) {
	svc, _ := newTestService()
	for _, age := range []int{-1, 121} {
		p := validPatient()
		a := age
		p.Age = &a
		if err := svc.Create(context.Background(), p); !apperr.IsValidation(err) {
			t.Errorf("age %d: expected validation error, got %v", age, err)
		}
	}
	p := validPatient()
	a := 40
	p.Age = &a
	if err := svc.Create(context.Background(), p); err != nil {
		t.Errorf("age 40: unexpected error %v", err)
	}
}

func TestCreate_DuplicateNationalID(t *testing.T) {
	svc, repo := newTestService()
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	dup := validPatient()
	dup.Name = "Someone Else"
	err := svc.Create(context.Background(), dup)
	if !errors.Is(err, apperr.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Errorf("expected exactly one stored row, got %d", len(repo.items))
	}
}

func TestSearch_EmptyFilterListsAll(t *testing.T) {
	svc, _ := newTestService()
	ids := []string{"11111-1111111-1", "22222-2222222-2", "33333-3333333-3"}
	for i, nid := range ids {
		p := &Patient{Name: fmt.Sprintf("Patient %d", i), NationalID: nid, Phone: "0300"}
		if err := svc.Create(context.Background(), p); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	items, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	for i, it := range items {
		if it.NationalID != ids[i] {
			t.Errorf("row %d out of insertion order: %s", i, it.NationalID)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != p.Name || got.NationalID != p.NationalID || got.Phone != p.Phone {
		t.Errorf("round trip mismatch: %+v vs %+v", got, p)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()
	p := validPatient()
	p.ID = 99
	if err := svc.Update(context.Background(), p); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newTestService()
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Errorf("row count changed on failed delete: %d", len(repo.items))
	}
}

func TestNameByNationalID(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Create(context.Background(), validPatient()); err != nil {
		t.Fatalf("create: %v", err)
	}
	name, err := svc.NameByNationalID(context.Background(), "12345-1234567-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ali Khan" {
		t.Errorf("name = %q", name)
	}
	if _, err := svc.NameByNationalID(context.Background(), "99999-9999999-9"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
