package ledger

import (
	"errors"
	"fmt"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound      ErrCode = "ITEM_NOT_FOUND"
	ErrOutOfStock        ErrCode = "OUT_OF_STOCK"
	ErrRecordNotFound    ErrCode = "RECORD_NOT_FOUND"
	ErrInvalidQuantity   ErrCode = "INVALID_QUANTITY"
	ErrInsufficientStock ErrCode = "INSUFFICIENT_STOCK"
	ErrInvalidRecords    ErrCode = "INVALID_RECORDS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// ItemNotFoundError reports which item of a batch does not exist.
type ItemNotFoundError struct {
	ItemID int64
}

func (e *ItemNotFoundError) Error() string { return fmt.Sprintf("item %d not found", e.ItemID) }
func (e *ItemNotFoundError) Code() ErrCode { return ErrItemNotFound }

// InsufficientStockError reports the first item of a batch whose stock
// cannot cover the requested quantity.
type InsufficientStockError struct {
	ItemID    int64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("item %d: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}
func (e *InsufficientStockError) Code() ErrCode { return ErrInsufficientStock }

// InvalidRecordsError lists the record ids of a batch return that are
// missing or not currently borrowed.
type InvalidRecordsError struct {
	Missing []int64
}

func (e *InvalidRecordsError) Error() string {
	return fmt.Sprintf("invalid record ids: %v", e.Missing)
}
func (e *InvalidRecordsError) Code() ErrCode { return ErrInvalidRecords }
