package statsrepo

import (
	"context"
	"database/sql"
)

type Summary struct {
	Items       int64 `json:"items"`
	OutOfStock  int64 `json:"out_of_stock"`
	ActiveLoans int64 `json:"active_loans"`
	Users       int64 `json:"users"`
}

type Repo interface {
	Summary(ctx context.Context) (*Summary, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Summary is a display read; it is allowed to lag in-flight units of
// work and must never feed ledger decisions.
func (r *repo) Summary(ctx context.Context) (*Summary, error) {
	const q = `
			SELECT
			(SELECT count(*) FROM items),
			(SELECT count(*) FROM items WHERE stock = 0),
			(SELECT count(*) FROM borrow_records WHERE status = 'Borrowed'),
			(SELECT count(*) FROM users WHERE deleted_at IS NULL)`
	s := &Summary{}
	err := r.db.QueryRowContext(ctx, q).Scan(&s.Items, &s.OutOfStock, &s.ActiveLoans, &s.Users)
	if err != nil {
		return nil, err
	}
	return s, nil
}
