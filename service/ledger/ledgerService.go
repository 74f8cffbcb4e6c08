// Package ledger owns the stock/record consistency invariants: stock
// never goes negative, item status always mirrors stock, and every
// borrow record is accounted exactly once (one decrement at creation,
// one increment at its return). Every operation is a single unit of
// work; it commits everything or commits nothing.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	"lendify/model"
	lrepo "lendify/repository/ledger"
	"lendify/util/database"

	"github.com/samber/lo"
)

type Repo interface {
	LockItemStock(ctx context.Context, tx *sql.Tx, itemID int64) (int64, error)
	LockItemStocks(ctx context.Context, tx *sql.Tx, itemIDs []int64) ([]lrepo.ItemStock, error)
	SetItemStock(ctx context.Context, tx *sql.Tx, itemID, stock int64) error

	InsertRecord(ctx context.Context, tx *sql.Tx, userID, itemID int64, usageLocation, occasion *string) (int64, error)
	LockBorrowedRecord(ctx context.Context, tx *sql.Tx, recordID int64) (int64, error)
	LockBorrowedRecords(ctx context.Context, tx *sql.Tx, recordIDs []int64) ([]lrepo.LockedRecord, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, recordIDs []int64, at time.Time) error

	ListRecords(ctx context.Context) ([]model.BorrowRecord, error)
}

type Service interface {
	// Borrow takes one unit of stock and opens a Borrowed record.
	Borrow(ctx context.Context, userID, itemID int64) error

	// Return closes a Borrowed record and gives its unit of stock back.
	Return(ctx context.Context, recordID int64) error

	// BorrowBatch fulfills every entry or none; returns records created.
	BorrowBatch(ctx context.Context, userID int64, quantities map[int64]int64, usageLocation, occasion string) (int64, error)

	// ReturnBatch closes every listed record or none; returns records closed.
	ReturnBatch(ctx context.Context, recordIDs []int64) (int64, error)

	// History lists all records, newest first, with denormalized names.
	History(ctx context.Context) ([]model.BorrowRecord, error)
}

// ----- Service implementation -----

type service struct {
	store database.Store
	r     Repo
}

func New(store database.Store, r Repo) Service {
	return &service{store: store, r: r}
}

func (s *service) Borrow(ctx context.Context, userID, itemID int64) error {
	return s.store.InTx(ctx, func(tx *sql.Tx) error {
		// Re-read stock under the row lock; listing reads are stale by
		// contract and never drive this decision.
		stock, err := s.r.LockItemStock(ctx, tx, itemID)
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrItemNotFound)
		}
		if err != nil {
			return err
		}
		if stock <= 0 {
			return makeErr(ErrOutOfStock)
		}
		if err := s.r.SetItemStock(ctx, tx, itemID, stock-1); err != nil {
			return err
		}
		_, err = s.r.InsertRecord(ctx, tx, userID, itemID, nil, nil)
		return err
	})
}

func (s *service) Return(ctx context.Context, recordID int64) error {
	return s.store.InTx(ctx, func(tx *sql.Tx) error {
		itemID, err := s.r.LockBorrowedRecord(ctx, tx, recordID)
		if errors.Is(err, sql.ErrNoRows) {
			// Already returned or never existed; either way no writes.
			return makeErr(ErrRecordNotFound)
		}
		if err != nil {
			return err
		}
		stock, err := s.r.LockItemStock(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if err := s.r.MarkReturned(ctx, tx, []int64{recordID}, time.Now().UTC()); err != nil {
			return err
		}
		return s.r.SetItemStock(ctx, tx, itemID, stock+1)
	})
}

func (s *service) BorrowBatch(ctx context.Context, userID int64, quantities map[int64]int64, usageLocation, occasion string) (int64, error) {
	if len(quantities) == 0 {
		return 0, makeErr(ErrInvalidQuantity)
	}
	for _, qty := range quantities {
		if qty <= 0 {
			return 0, makeErr(ErrInvalidQuantity)
		}
	}

	// Lock in ascending item id order so concurrent batches touching
	// overlapping item sets cannot deadlock.
	itemIDs := lo.Keys(quantities)
	slices.Sort(itemIDs)

	var created int64
	err := s.store.InTx(ctx, func(tx *sql.Tx) error {
		created = 0
		stocks, err := s.r.LockItemStocks(ctx, tx, itemIDs)
		if err != nil {
			return err
		}
		stockByID := make(map[int64]int64, len(stocks))
		for _, is := range stocks {
			stockByID[is.ID] = is.Stock
		}

		// Verify the whole batch before touching anything.
		for _, id := range itemIDs {
			stock, ok := stockByID[id]
			if !ok {
				return &ItemNotFoundError{ItemID: id}
			}
			if stock < quantities[id] {
				return &InsufficientStockError{ItemID: id, Available: stock, Requested: quantities[id]}
			}
		}

		for _, id := range itemIDs {
			qty := quantities[id]
			if err := s.r.SetItemStock(ctx, tx, id, stockByID[id]-qty); err != nil {
				return err
			}
			// One record per borrowed unit.
			for i := int64(0); i < qty; i++ {
				if _, err := s.r.InsertRecord(ctx, tx, userID, id, &usageLocation, &occasion); err != nil {
					return err
				}
			}
			created += qty
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (s *service) ReturnBatch(ctx context.Context, recordIDs []int64) (int64, error) {
	if len(recordIDs) == 0 {
		return 0, makeErr(ErrInvalidRecords)
	}
	ids := slices.Clone(recordIDs)
	slices.Sort(ids)

	err := s.store.InTx(ctx, func(tx *sql.Tx) error {
		locked, err := s.r.LockBorrowedRecords(ctx, tx, ids)
		if err != nil {
			return err
		}
		if len(locked) != len(ids) {
			lockedIDs := lo.Map(locked, func(lr lrepo.LockedRecord, _ int) int64 { return lr.ID })
			missing, _ := lo.Difference(ids, lockedIDs)
			return &InvalidRecordsError{Missing: missing}
		}

		if err := s.r.MarkReturned(ctx, tx, ids, time.Now().UTC()); err != nil {
			return err
		}

		// Group increments per item, then lock items ascending.
		perItem := make(map[int64]int64, len(locked))
		for _, lr := range locked {
			perItem[lr.ItemID]++
		}
		itemIDs := lo.Keys(perItem)
		slices.Sort(itemIDs)

		stocks, err := s.r.LockItemStocks(ctx, tx, itemIDs)
		if err != nil {
			return err
		}
		for _, is := range stocks {
			if err := s.r.SetItemStock(ctx, tx, is.ID, is.Stock+perItem[is.ID]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (s *service) History(ctx context.Context) ([]model.BorrowRecord, error) {
	return s.r.ListRecords(ctx)
}
