package doctor

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

const cols = `id, name, national_id, department`

func scanDoctor(row interface{ Scan(...interface{}) error }) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.NationalID, &d.Department)
	return &d, err
}

func (r *repoSQLite) Create(ctx context.Context, d *Doctor) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO doctors (name, national_id, department) VALUES (?, ?, ?)`,
		d.Name, d.NationalID, d.Department)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("national ID %s already exists: %w", d.NationalID, apperr.ErrDuplicateKey)
		}
		return err
	}
	d.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := scanDoctor(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM doctors WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("doctor %d: %w", id, apperr.ErrNotFound)
	}
	return d, err
}

func (r *repoSQLite) GetByNationalID(ctx context.Context, nationalID string) (*Doctor, error) {
	d, err := scanDoctor(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM doctors WHERE national_id = ?`, nationalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("doctor %s: %w", nationalID, apperr.ErrNotFound)
	}
	return d, err
}

func (r *repoSQLite) Search(ctx context.Context, term string) ([]*Doctor, error) {
	q := `SELECT ` + cols + ` FROM doctors ORDER BY id`
	var args []interface{}
	if term != "" {
		q = `SELECT ` + cols + ` FROM doctors
			WHERE name LIKE ? OR national_id LIKE ?
			ORDER BY id`
		like := "%" + term + "%"
		args = []interface{}{like, like}
	}
	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, d *Doctor) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE doctors SET name=?, national_id=?, department=? WHERE id = ?`,
		d.Name, d.NationalID, d.Department, d.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("national ID %s already exists: %w", d.NationalID, apperr.ErrDuplicateKey)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("doctor %d: %w", d.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("doctor %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n)
	return n, err
}
