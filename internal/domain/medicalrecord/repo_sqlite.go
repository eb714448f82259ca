package medicalrecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/apperr"
)

type repoSQLite struct{ store *sql.DB }

func NewRepoSQLite(store *sql.DB) Repository { return &repoSQLite{store: store} }

const cols = `id, patient, patient_national_id, doctor, diagnosis, treatment, prescription, visit_date`

func scanRecord(row interface{ Scan(...interface{}) error }) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.Patient, &m.PatientNationalID, &m.Doctor,
		&m.Diagnosis, &m.Treatment, &m.Prescription, &m.VisitDate)
	return &m, err
}

func (r *repoSQLite) Create(ctx context.Context, m *MedicalRecord) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO medical_records (patient, patient_national_id, doctor, diagnosis, treatment, prescription, visit_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Patient, m.PatientNationalID, m.Doctor, m.Diagnosis, m.Treatment, m.Prescription, m.VisitDate)
	if err != nil {
		return err
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	m, err := scanRecord(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM medical_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("medical record %d: %w", id, apperr.ErrNotFound)
	}
	return m, err
}

func (r *repoSQLite) Search(ctx context.Context, patientNationalID string) ([]*MedicalRecord, error) {
	q := `SELECT ` + cols + ` FROM medical_records ORDER BY visit_date DESC, id DESC`
	var args []interface{}
	if patientNationalID != "" {
		q = `SELECT ` + cols + ` FROM medical_records
			WHERE patient_national_id = ?
			ORDER BY visit_date DESC, id DESC`
		args = []interface{}{patientNationalID}
	}
	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalRecord
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, m *MedicalRecord) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE medical_records
		SET patient=?, patient_national_id=?, doctor=?, diagnosis=?, treatment=?, prescription=?, visit_date=?
		WHERE id = ?`,
		m.Patient, m.PatientNationalID, m.Doctor, m.Diagnosis, m.Treatment, m.Prescription, m.VisitDate, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("medical record %d: %w", m.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM medical_records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("medical record %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM medical_records`).Scan(&n)
	return n, err
}
