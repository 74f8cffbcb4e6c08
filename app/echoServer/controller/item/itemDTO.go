package item

type ItemReq struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Stock    int64  `json:"stock" validate:"gte=0"`
	Location string `json:"location"`
}
