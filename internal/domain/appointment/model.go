package appointment

// Appointment statuses. Scheduled is the default for new rows.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Appointment maps to the appointments table. Patient and Doctor hold the
// names copied from the directories at write time; a later rename of either
// party does not rewrite existing rows.
type Appointment struct {
	ID                int64  `db:"id" json:"id"`
	Patient           string `db:"patient" json:"patient"`
	PatientNationalID string `db:"patient_national_id" json:"patient_national_id"`
	Doctor            string `db:"doctor" json:"doctor"`
	DoctorNationalID  string `db:"doctor_national_id" json:"doctor_national_id"`
	Date              string `db:"date" json:"date"`
	Time              string `db:"time" json:"time"`
	Status            string `db:"status" json:"status"`
}
