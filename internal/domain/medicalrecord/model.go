package medicalrecord

// MedicalRecord maps to the medical_records table. Patient holds the name
// copied from the patient directory at write time; Doctor is free text (the
// attending physician is recorded by name, not by directory reference).
type MedicalRecord struct {
	ID                int64  `db:"id" json:"id"`
	Patient           string `db:"patient" json:"patient"`
	PatientNationalID string `db:"patient_national_id" json:"patient_national_id"`
	Doctor            string `db:"doctor" json:"doctor"`
	Diagnosis         string `db:"diagnosis" json:"diagnosis"`
	Treatment         string `db:"treatment" json:"treatment"`
	Prescription      string `db:"prescription" json:"prescription"`
	VisitDate         string `db:"visit_date" json:"visit_date"`
}
