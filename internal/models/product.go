package models

// Product entity. Price and IsActive are pointers so the command layer can
// tell "omitted" from an explicit zero and apply the documented defaults
// (price 0, is_active 1). Deletion is soft: is_active flips to 0 and the row
// stays behind for historical documents.
type Product struct {
	ID           string   `gorm:"primaryKey" json:"id,omitempty"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Category     string   `json:"category,omitempty"`
	Subcategory  string   `json:"subcategory,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	Supplier     string   `json:"supplier,omitempty"`
	InternalCode string   `json:"internalCode,omitempty"`
	IsActive     *int     `json:"isActive,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

func (Product) TableName() string { return "products" }
