package models

type Category struct {
	ID        string `gorm:"primaryKey" json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         string `gorm:"primaryKey" json:"id,omitempty"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func (Subcategory) TableName() string { return "subcategories" }
