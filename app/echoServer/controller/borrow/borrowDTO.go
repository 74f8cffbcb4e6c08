package borrow

type BorrowReq struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}

type BatchBorrowReq struct {
	// item id -> requested quantity
	Items         map[int64]int64 `json:"items" validate:"required,min=1,dive,gt=0"`
	UsageLocation string          `json:"usage_location" validate:"required"`
	Occasion      string          `json:"occasion" validate:"required"`
}

type BatchReturnReq struct {
	RecordIDs []int64 `json:"record_ids" validate:"required,min=1,dive,gt=0"`
}
