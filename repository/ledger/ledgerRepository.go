// repository/ledger/repo.go
package ledger

import (
	"context"
	"database/sql"
	"time"

	"lendify/model"
)

type ItemStock struct {
	ID    int64
	Stock int64
}

type LockedRecord struct {
	ID     int64
	ItemID int64
}

type Repo interface {
	// Items (all under the caller's unit of work)
	LockItemStock(ctx context.Context, tx *sql.Tx, itemID int64) (int64, error)
	LockItemStocks(ctx context.Context, tx *sql.Tx, itemIDs []int64) ([]ItemStock, error)
	SetItemStock(ctx context.Context, tx *sql.Tx, itemID, stock int64) error

	// Records
	InsertRecord(ctx context.Context, tx *sql.Tx, userID, itemID int64, usageLocation, occasion *string) (int64, error)
	LockBorrowedRecord(ctx context.Context, tx *sql.Tx, recordID int64) (int64, error)
	LockBorrowedRecords(ctx context.Context, tx *sql.Tx, recordIDs []int64) ([]LockedRecord, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, recordIDs []int64, at time.Time) error

	// History (display read, outside any unit of work)
	ListRecords(ctx context.Context) ([]model.BorrowRecord, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) LockItemStock(ctx context.Context, tx *sql.Tx, itemID int64) (int64, error) {
	const q = `
			SELECT stock
			FROM items
			WHERE id = $1
			FOR UPDATE`
	var stock int64
	err := tx.QueryRowContext(ctx, q, itemID).Scan(&stock)
	return stock, err
}

// LockItemStocks locks every requested row in ascending id order, so
// concurrent batches cannot deadlock on each other.
func (r *repo) LockItemStocks(ctx context.Context, tx *sql.Tx, itemIDs []int64) ([]ItemStock, error) {
	const q = `
			SELECT id, stock
			FROM items
			WHERE id = ANY($1)
			ORDER BY id
			FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ItemStock
	for rows.Next() {
		var is ItemStock
		if err := rows.Scan(&is.ID, &is.Stock); err != nil {
			return nil, err
		}
		out = append(out, is)
	}
	return out, rows.Err()
}

func (r *repo) SetItemStock(ctx context.Context, tx *sql.Tx, itemID, stock int64) error {
	// Status is recomputed from stock in the same statement.
	const q = `
		UPDATE items
		SET stock = $2,
			status = CASE WHEN $2 > 0 THEN 'Available' ELSE 'Out of Stock' END
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, itemID, stock)
	return err
}

func (r *repo) InsertRecord(ctx context.Context, tx *sql.Tx, userID, itemID int64, usageLocation, occasion *string) (int64, error) {
	const q = `
		INSERT INTO borrow_records (user_id, item_id, status, usage_location, occasion)
		VALUES ($1, $2, 'Borrowed', $3, $4)
		RETURNING id`
	var id int64
	err := tx.QueryRowContext(ctx, q, userID, itemID, usageLocation, occasion).Scan(&id)
	return id, err
}

func (r *repo) LockBorrowedRecord(ctx context.Context, tx *sql.Tx, recordID int64) (int64, error) {
	const q = `
			SELECT item_id
			FROM borrow_records
			WHERE id = $1
			AND status = 'Borrowed'
			FOR UPDATE`
	var itemID int64
	err := tx.QueryRowContext(ctx, q, recordID).Scan(&itemID)
	return itemID, err
}

func (r *repo) LockBorrowedRecords(ctx context.Context, tx *sql.Tx, recordIDs []int64) ([]LockedRecord, error) {
	const q = `
			SELECT id, item_id
			FROM borrow_records
			WHERE id = ANY($1)
			AND status = 'Borrowed'
			ORDER BY id
			FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, recordIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LockedRecord
	for rows.Next() {
		var lr LockedRecord
		if err := rows.Scan(&lr.ID, &lr.ItemID); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, recordIDs []int64, at time.Time) error {
	const q = `
		UPDATE borrow_records
		SET status = 'Returned',
			returned_date = $2
		WHERE id = ANY($1)
		AND status = 'Borrowed'`
	res, err := tx.ExecContext(ctx, q, recordIDs, at)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff != int64(len(recordIDs)) {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) ListRecords(ctx context.Context) ([]model.BorrowRecord, error) {
	const q = `
			SELECT
			br.id, br.user_id, u.name, br.item_id, i.name,
			br.status, br.borrowed_date, br.returned_date,
			br.usage_location, br.occasion
			FROM borrow_records br
			JOIN users u ON u.id = br.user_id
			JOIN items i ON i.id = br.item_id
			ORDER BY br.borrowed_date DESC, br.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BorrowRecord
	for rows.Next() {
		var rec model.BorrowRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.UserName, &rec.ItemID, &rec.ItemName,
			&rec.Status, &rec.BorrowedDate, &rec.ReturnedDate,
			&rec.UsageLocation, &rec.Occasion,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
