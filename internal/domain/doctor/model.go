package doctor

// Doctor maps to the doctors table.
type Doctor struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	NationalID string `db:"national_id" json:"national_id"`
	Department string `db:"department" json:"department"`
}
