package models

// Country reference row; seeded once with the UN member states.
type Country struct {
	ID        string `gorm:"primaryKey" json:"id,omitempty"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (Country) TableName() string { return "countries" }
