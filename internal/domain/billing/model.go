package billing

import "github.com/shopspring/decimal"

// Billing statuses. Pending is the default for new rows.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// Billing maps to the billings table. Patient holds the name copied from the
// patient directory at write time. Amount is decimal in the model and REAL
// in the store.
type Billing struct {
	ID                int64           `db:"id" json:"id"`
	Patient           string          `db:"patient" json:"patient"`
	PatientNationalID string          `db:"patient_national_id" json:"patient_national_id"`
	Amount            decimal.Decimal `db:"amount" json:"amount"`
	Details           string          `db:"details" json:"details"`
	Status            string          `db:"status" json:"status"`
	BillDate          string          `db:"bill_date" json:"bill_date"`
}
