// Package db opens and provisions the console's single-file SQLite store.
// One *sql.DB is held for the process lifetime; every logical operation in
// the entity managers is a single statement, so statement-level atomicity is
// the only transactional guarantee the store needs to provide.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Open opens (creating on first use) the store file at path.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	d, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}
	return d, nil
}

// schema is the superset layout across all console variants: patients carry
// the optional demographic columns, billings carry bill_date, and the
// pharmacy table is present. Dependent tables store denormalized name
// copies next to the national IDs; those copies are written once at
// create/update time and are never kept in sync with later renames.
const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	national_id TEXT UNIQUE,
	phone TEXT,
	age INTEGER,
	gender TEXT,
	address TEXT
);
CREATE TABLE IF NOT EXISTS doctors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	national_id TEXT UNIQUE,
	department TEXT
);
CREATE TABLE IF NOT EXISTS appointments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient TEXT,
	patient_national_id TEXT,
	doctor TEXT,
	doctor_national_id TEXT,
	date TEXT,
	time TEXT,
	status TEXT
);
CREATE TABLE IF NOT EXISTS medical_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient TEXT,
	patient_national_id TEXT,
	doctor TEXT,
	diagnosis TEXT,
	treatment TEXT,
	prescription TEXT,
	visit_date TEXT
);
CREATE TABLE IF NOT EXISTS billings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient TEXT,
	patient_national_id TEXT,
	amount REAL,
	details TEXT,
	status TEXT,
	bill_date TEXT DEFAULT (date('now'))
);
CREATE TABLE IF NOT EXISTS pharmacy (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	medicine_name TEXT,
	stock INTEGER,
	price REAL
);
`

// Provision creates the entity tables if they do not exist. Idempotent; the
// schema is never migrated or versioned.
func Provision(ctx context.Context, d *sql.DB) error {
	if _, err := d.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("provision schema: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a SQLite uniqueness-constraint
// failure (a duplicate national ID).
func IsUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
