package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty store path")
	}
}

func TestProvision_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	if err := Provision(ctx, d); err != nil {
		t.Fatalf("first Provision: %v", err)
	}
	// Running again must be a no-op, not an error.
	if err := Provision(ctx, d); err != nil {
		t.Fatalf("second Provision: %v", err)
	}

	var n int
	err = d.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN
		 ('patients','doctors','appointments','medical_records','billings','pharmacy')`).Scan(&n)
	if err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 entity tables, got %d", n)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	if err := Provision(ctx, d); err != nil {
		t.Fatalf("Provision: %v", err)
	}

	if _, err := d.ExecContext(ctx,
		`INSERT INTO patients (name, national_id, phone) VALUES (?, ?, ?)`,
		"Ali Khan", "12345-1234567-1", "0300-1111111"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err = d.ExecContext(ctx,
		`INSERT INTO patients (name, national_id, phone) VALUES (?, ?, ?)`,
		"Other Person", "12345-1234567-1", "0300-2222222")
	if err == nil {
		t.Fatal("expected uniqueness violation")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
	if IsUniqueViolation(context.Canceled) {
		t.Error("unrelated error misclassified as unique violation")
	}

	var count int
	if err := d.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM patients WHERE national_id = ?`, "12345-1234567-1").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 row after failed duplicate insert, got %d", count)
	}
}
