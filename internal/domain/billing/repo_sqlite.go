package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hms/hms/internal/platform/apperr"
)

type repoSQLite struct{ store *sql.DB }

func NewRepoSQLite(store *sql.DB) Repository { return &repoSQLite{store: store} }

const cols = `id, patient, patient_national_id, amount, details, status, bill_date`

func scanBilling(row interface{ Scan(...interface{}) error }) (*Billing, error) {
	var b Billing
	var amount float64
	err := row.Scan(&b.ID, &b.Patient, &b.PatientNationalID, &amount,
		&b.Details, &b.Status, &b.BillDate)
	b.Amount = decimal.NewFromFloat(amount)
	return &b, err
}

func (r *repoSQLite) Create(ctx context.Context, b *Billing) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO billings (patient, patient_national_id, amount, details, status, bill_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.Patient, b.PatientNationalID, b.Amount.InexactFloat64(), b.Details, b.Status, b.BillDate)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Billing, error) {
	b, err := scanBilling(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM billings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %d: %w", id, apperr.ErrNotFound)
	}
	return b, err
}

func (r *repoSQLite) Search(ctx context.Context, patientNationalID string) ([]*Billing, error) {
	q := `SELECT ` + cols + ` FROM billings ORDER BY bill_date DESC, id DESC`
	var args []interface{}
	if patientNationalID != "" {
		q = `SELECT ` + cols + ` FROM billings
			WHERE patient_national_id LIKE ?
			ORDER BY bill_date DESC, id DESC`
		args = []interface{}{"%" + patientNationalID + "%"}
	}
	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Billing
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, b *Billing) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE billings
		SET patient=?, patient_national_id=?, amount=?, details=?, status=?, bill_date=?
		WHERE id = ?`,
		b.Patient, b.PatientNationalID, b.Amount.InexactFloat64(), b.Details, b.Status, b.BillDate, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bill %d: %w", b.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM billings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bill %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM billings`).Scan(&n)
	return n, err
}

func (r *repoSQLite) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var total float64
	err := r.store.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM billings`).Scan(&total)
	return decimal.NewFromFloat(total), err
}
