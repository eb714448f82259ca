package pharmacy

import "github.com/shopspring/decimal"

// Item maps to the pharmacy table. Medicine names are not unique; restocks
// of the same medicine may appear as separate rows.
type Item struct {
	ID           int64           `db:"id" json:"id"`
	MedicineName string          `db:"medicine_name" json:"medicine_name"`
	Stock        int             `db:"stock" json:"stock"`
	Price        decimal.Decimal `db:"price" json:"price"`
}
