// service/ledger/ledger_batch_test.go
package ledger_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	ledgersvc "lendify/service/ledger"
)

func TestBorrowBatch_Success(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 5)
	f.addItem(2, 3)
	s := newService(f)

	created, err := s.BorrowBatch(ctx, 7, map[int64]int64{1: 2, 2: 3}, "Lab 3", "Robotics demo")
	if err != nil {
		t.Fatal(err)
	}
	if created != 5 {
		t.Fatalf("created = %d, want 5", created)
	}
	if f.items[1].stock != 3 || f.items[2].stock != 0 {
		t.Fatalf("stocks = %d,%d, want 3,0", f.items[1].stock, f.items[2].stock)
	}
	if f.borrowedCount(1) != 2 || f.borrowedCount(2) != 3 {
		t.Fatalf("records = %d,%d, want 2,3", f.borrowedCount(1), f.borrowedCount(2))
	}
}

func TestBorrowBatch_LocksItemsInAscendingOrder(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(3, 1)
	f.addItem(1, 1)
	f.addItem(2, 1)
	s := newService(f)

	if _, err := s.BorrowBatch(ctx, 7, map[int64]int64{3: 1, 1: 1, 2: 1}, "Lab", "Demo"); err != nil {
		t.Fatal(err)
	}
	if len(f.lockedBatches) != 1 {
		t.Fatalf("lock calls = %d, want 1", len(f.lockedBatches))
	}
	if got := f.lockedBatches[0]; !slices.IsSorted(got) {
		t.Fatalf("lock order %v not ascending", got)
	}
}

func TestBorrowBatch_InsufficientStockAbortsWholeBatch(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 5)
	f.addItem(2, 1)
	s := newService(f)

	_, err := s.BorrowBatch(ctx, 7, map[int64]int64{1: 2, 2: 4}, "Lab", "Demo")
	var isse *ledgersvc.InsufficientStockError
	if !errors.As(err, &isse) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if isse.ItemID != 2 || isse.Available != 1 || isse.Requested != 4 {
		t.Fatalf("detail = %+v", isse)
	}

	// No item in the batch may show any effect.
	if f.items[1].stock != 5 || f.items[2].stock != 1 {
		t.Fatalf("stocks changed: %d,%d", f.items[1].stock, f.items[2].stock)
	}
	if len(f.records) != 0 {
		t.Fatalf("records created = %d, want 0", len(f.records))
	}
}

func TestBorrowBatch_MissingItemAbortsWholeBatch(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 5)
	s := newService(f)

	_, err := s.BorrowBatch(ctx, 7, map[int64]int64{1: 1, 9: 1}, "Lab", "Demo")
	var infe *ledgersvc.ItemNotFoundError
	if !errors.As(err, &infe) {
		t.Fatalf("err = %v, want ItemNotFoundError", err)
	}
	if infe.ItemID != 9 {
		t.Fatalf("item id = %d, want 9", infe.ItemID)
	}
	if f.items[1].stock != 5 || len(f.records) != 0 {
		t.Fatal("partial effect from failed batch")
	}
}

func TestBorrowBatch_RejectsNonPositiveQuantity(t *testing.T) {
	s := newService(newFakeRepo())

	_, err := s.BorrowBatch(context.Background(), 7, map[int64]int64{1: 0}, "Lab", "Demo")
	if ledgersvc.Code(err) != ledgersvc.ErrInvalidQuantity {
		t.Fatalf("err = %v, want INVALID_QUANTITY", err)
	}
	_, err = s.BorrowBatch(context.Background(), 7, nil, "Lab", "Demo")
	if ledgersvc.Code(err) != ledgersvc.ErrInvalidQuantity {
		t.Fatalf("empty batch err = %v, want INVALID_QUANTITY", err)
	}
}

func TestReturnBatch_Success(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 2)
	f.addItem(2, 1)
	s := newService(f)

	if _, err := s.BorrowBatch(ctx, 7, map[int64]int64{1: 2, 2: 1}, "Lab", "Demo"); err != nil {
		t.Fatal(err)
	}

	returned, err := s.ReturnBatch(ctx, []int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if returned != 3 {
		t.Fatalf("returned = %d, want 3", returned)
	}
	if f.items[1].stock != 2 || f.items[2].stock != 1 {
		t.Fatalf("stocks = %d,%d, want 2,1", f.items[1].stock, f.items[2].stock)
	}
	if f.borrowedCount(1) != 0 || f.borrowedCount(2) != 0 {
		t.Fatal("records left open after batch return")
	}
}

func TestReturnBatch_AlreadyReturnedRecordAbortsWholeBatch(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 1)
	f.addItem(2, 1)
	s := newService(f)

	if err := s.Borrow(ctx, 7, 1); err != nil { // record 1
		t.Fatal(err)
	}
	if err := s.Borrow(ctx, 7, 2); err != nil { // record 2
		t.Fatal(err)
	}
	if err := s.Return(ctx, 1); err != nil {
		t.Fatal(err)
	}

	_, err := s.ReturnBatch(ctx, []int64{1, 2})
	var ire *ledgersvc.InvalidRecordsError
	if !errors.As(err, &ire) {
		t.Fatalf("err = %v, want InvalidRecordsError", err)
	}
	if !slices.Equal(ire.Missing, []int64{1}) {
		t.Fatalf("missing = %v, want [1]", ire.Missing)
	}

	// Record 2's item must not see a partial increment.
	if f.items[2].stock != 0 {
		t.Fatalf("item 2 stock = %d, want 0", f.items[2].stock)
	}
	if f.borrowedCount(2) != 1 {
		t.Fatal("record 2 closed by failed batch")
	}
}

func TestReturnBatch_UnknownRecordAbortsWholeBatch(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(1, 1)
	s := newService(f)

	if err := s.Borrow(ctx, 7, 1); err != nil {
		t.Fatal(err)
	}

	_, err := s.ReturnBatch(ctx, []int64{1, 42})
	var ire *ledgersvc.InvalidRecordsError
	if !errors.As(err, &ire) {
		t.Fatalf("err = %v, want InvalidRecordsError", err)
	}
	if !slices.Equal(ire.Missing, []int64{42}) {
		t.Fatalf("missing = %v, want [42]", ire.Missing)
	}
	if f.items[1].stock != 0 {
		t.Fatal("stock changed by failed batch return")
	}
}
