package itemrepo

import (
	"context"
	"database/sql"

	"lendify/model"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, it *model.Item) error {
	const q = `
INSERT INTO items (name, category, stock, location, status)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		it.Name, it.Category, it.Stock, it.Location, it.Status,
	).Scan(&it.ID)
}

func (r *repo) Update(ctx context.Context, it *model.Item) (bool, error) {
	const q = `
		UPDATE items
		SET name = $2, category = $3, stock = $4, location = $5, status = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		it.ID, it.Name, it.Category, it.Stock, it.Location, it.Status)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	const q = `
			SELECT id, name, category, stock, location, status
			FROM items
			ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Stock, &it.Location, &it.Status); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
			SELECT id, name, category, stock, location, status
			FROM items
			WHERE id = $1`
	it := &model.Item{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&it.ID, &it.Name, &it.Category, &it.Stock, &it.Location, &it.Status)
	if err != nil {
		return nil, err
	}
	return it, nil
}
