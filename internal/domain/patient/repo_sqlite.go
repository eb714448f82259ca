package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/db"
)

type repoSQLite struct{ store *sql.DB }

func NewRepoSQLite(store *sql.DB) Repository { return &repoSQLite{store: store} }

const cols = `id, name, national_id, phone, age, gender, address`

func scanPatient(row interface{ Scan(...interface{}) error }) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.NationalID, &p.Phone, &p.Age, &p.Gender, &p.Address)
	return &p, err
}

func (r *repoSQLite) Create(ctx context.Context, p *Patient) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO patients (name, national_id, phone, age, gender, address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.NationalID, p.Phone, p.Age, p.Gender, p.Address)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("national ID %s already exists: %w", p.NationalID, apperr.ErrDuplicateKey)
		}
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM patients WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("patient %d: %w", id, apperr.ErrNotFound)
	}
	return p, err
}

func (r *repoSQLite) GetByNationalID(ctx context.Context, nationalID string) (*Patient, error) {
	p, err := scanPatient(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM patients WHERE national_id = ?`, nationalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("patient %s: %w", nationalID, apperr.ErrNotFound)
	}
	return p, err
}

func (r *repoSQLite) Search(ctx context.Context, term string) ([]*Patient, error) {
	q := `SELECT ` + cols + ` FROM patients ORDER BY id`
	var args []interface{}
	if term != "" {
		// The pattern is bound as a parameter, never concatenated.
		q = `SELECT ` + cols + ` FROM patients
			WHERE name LIKE ? OR national_id LIKE ? OR phone LIKE ?
			ORDER BY id`
		like := "%" + term + "%"
		args = []interface{}{like, like, like}
	}
	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, p *Patient) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE patients SET name=?, national_id=?, phone=?, age=?, gender=?, address=?
		WHERE id = ?`,
		p.Name, p.NationalID, p.Phone, p.Age, p.Gender, p.Address, p.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("national ID %s already exists: %w", p.NationalID, apperr.ErrDuplicateKey)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("patient %d: %w", p.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("patient %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n)
	return n, err
}
