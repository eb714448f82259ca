package pharmacy

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

const cols = `id, medicine_name, stock, price`

func scanItem(row interface{ Scan(...interface{}) error }) (*Item, error) {
	var it Item
	var price float64
	err := row.Scan(&it.ID, &it.MedicineName, &it.Stock, &price)
	it.Price = decimal.NewFromFloat(price)
	return &it, err
}

func (r *repoSQLite) Create(ctx context.Context, it *Item) error {
	res, err := r.store.ExecContext(ctx, `
		INSERT INTO pharmacy (medicine_name, stock, price) VALUES (?, ?, ?)`,
		it.MedicineName, it.Stock, it.Price.InexactFloat64())
	if err != nil {
		return err
	}
	it.ID, err = res.LastInsertId()
	return err
}

func (r *repoSQLite) GetByID(ctx context.Context, id int64) (*Item, error) {
	it, err := scanItem(r.store.QueryRowContext(ctx,
		`SELECT `+cols+` FROM pharmacy WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pharmacy item %d: %w", id, apperr.ErrNotFound)
	}
	return it, err
}

func (r *repoSQLite) Search(ctx context.Context, term string) ([]*Item, error) {
	q := `SELECT ` + cols + ` FROM pharmacy ORDER BY id`
	var args []interface{}
	if term != "" {
		q = `SELECT ` + cols + ` FROM pharmacy WHERE medicine_name LIKE ? ORDER BY id`
		args = []interface{}{"%" + term + "%"}
	}
	rows, err := r.store.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repoSQLite) Update(ctx context.Context, it *Item) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE pharmacy SET medicine_name=?, stock=?, price=? WHERE id = ?`,
		it.MedicineName, it.Stock, it.Price.InexactFloat64(), it.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("pharmacy item %d: %w", it.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.store.ExecContext(ctx, `DELETE FROM pharmacy WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("pharmacy item %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *repoSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM pharmacy`).Scan(&n)
	return n, err
}
