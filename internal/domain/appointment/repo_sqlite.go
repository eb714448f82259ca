package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/apperr"
)

type repoSQLite struct{ store *sql.DB }

func NewRepoSQLite(store *sql.DB) Repository { return &repoSQLite{store: store} }

const cols = `id, patient, patient_national_id, doctor, doctor_national_id, date, time, status`

func scanAppointment(row interface{ Scan(...interface{}) error }) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.Patient, &a.PatientNationalID, &a.Doctor,
		&a.DoctorNationalID, &a.Date, &a.Time, &a.Status)
	return &a, err
}

func (r *repoSQLite) Create(ctx context.Context, a *Appointment) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO appointments (patient, patient_national_id, doctor, doctor_national_id, date, time, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.Patient, a.PatientNationalID, a.Doctor, a.DoctorNationalID, a.Date, a.Time, a.Status)
	if err != nil {
		return err
	}
	a.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM appointments WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("appointment %d: %w", id, apperr.ErrNotFound)
	}
	return a, err
}

func (r *repoSQLite) Search(ctx context.Context, patientNationalID, date string) ([]*Appointment, error) {
	q := `SELECT ` + cols + ` FROM appointments WHERE 1=1`
	var args []interface{}
	if patientNationalID != "" {
		q += ` AND patient_national_id LIKE ?`
		args = append(args, "%"+patientNationalID+"%")
	}
	if date != "" {
		q += ` AND date = ?`
		args = append(args, date)
	}
	q += ` ORDER BY id`

	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, a *Appointment) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE appointments
		SET patient=?, patient_national_id=?, doctor=?, doctor_national_id=?, date=?, time=?, status=?
		WHERE id = ?`,
		a.Patient, a.PatientNationalID, a.Doctor, a.DoctorNationalID, a.Date, a.Time, a.Status, a.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("appointment %d: %w", a.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("appointment %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&n)
	return n, err
}
