// model/item.go
package model

type ItemStatus string

const (
	ItemAvailable  ItemStatus = "Available"
	ItemOutOfStock ItemStatus = "Out of Stock"
)

// StatusFor derives an item's status from its stock. Status is a
// projection of stock, never set independently.
func StatusFor(stock int64) ItemStatus {
	if stock > 0 {
		return ItemAvailable
	}
	return ItemOutOfStock
}

type Item struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Stock    int64      `json:"stock"`
	Location string     `json:"location"`
	Status   ItemStatus `json:"status"`
}
