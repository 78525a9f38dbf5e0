package models

type Delivery struct {
	ID             string `gorm:"primaryKey" json:"id,omitempty"`
	DeliveryNumber string `json:"deliveryNumber"`
	ClientID       string `json:"clientId,omitempty"`
	ClientName     string `json:"clientName,omitempty"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

func (Delivery) TableName() string { return "deliveries" }

type DeliveryItem struct {
	ID          string  `gorm:"primaryKey" json:"id,omitempty"`
	DeliveryID  string  `json:"deliveryId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
}

func (DeliveryItem) TableName() string { return "delivery_items" }
