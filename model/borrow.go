// model/borrow.go
package model

import "time"

type RecordStatus string

const (
	RecordBorrowed RecordStatus = "Borrowed"
	RecordReturned RecordStatus = "Returned"
)

type BorrowRecord struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	UserName      string       `json:"user_name,omitempty"`
	ItemID        int64        `json:"item_id"`
	ItemName      string       `json:"item_name,omitempty"`
	Status        RecordStatus `json:"status"`
	BorrowedDate  time.Time    `json:"borrowed_date"`
	ReturnedDate  *time.Time   `json:"returned_date,omitempty"`
	UsageLocation *string      `json:"usage_location,omitempty"`
	Occasion      *string      `json:"occasion,omitempty"`
}
