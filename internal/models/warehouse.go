package models

type WarehouseGroup struct {
	ID          string `gorm:"primaryKey" json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

func (WarehouseGroup) TableName() string { return "warehouse_groups" }

// WarehouseItem carries ProductCode and ProductName snapshots next to the
// ProductID reference, same policy as invoice items.
type WarehouseItem struct {
	ID          string  `gorm:"primaryKey" json:"id,omitempty"`
	GroupID     string  `json:"groupId"`
	ProductID   string  `json:"productId"`
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

func (WarehouseItem) TableName() string { return "warehouse_items" }
