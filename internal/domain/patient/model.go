package patient

// Patient maps to the patients table. Name, national ID, and phone are
// required; the demographic fields were added later and stay optional.
type Patient struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	NationalID string  `db:"national_id" json:"national_id"`
	Phone      string  `db:"phone" json:"phone"`
	Age        *int    `db:"age" json:"age,omitempty"`
	Gender     *string `db:"gender" json:"gender,omitempty"`
	Address    *string `db:"address" json:"address,omitempty"`
}
