package models

type SupplierSector struct {
	ID        string `gorm:"primaryKey" json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (SupplierSector) TableName() string { return "supplier_sectors" }

type SupplierProduct struct {
	ID        string `gorm:"primaryKey" json:"id,omitempty"`
	Name      string `json:"name"`
	SectorID  string `json:"sectorId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (SupplierProduct) TableName() string { return "supplier_products" }

// Supplier entity. RegNumber is the registry number for non-Serbian
// companies; Serbian ones use MB/PIB. Soft-deleted via IsActive.
type Supplier struct {
	ID                  int64  `gorm:"primaryKey" json:"id,omitempty"`
	Name                string `json:"name"`
	LegalName           string `json:"legalName,omitempty"`
	MB                  string `gorm:"column:mb" json:"mb,omitempty"`
	PIB                 string `gorm:"column:pib" json:"pib,omitempty"`
	RegNumber           string `json:"regNumber,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	Country             string `json:"country,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	Telegram            string `json:"telegram,omitempty"`
	Instagram           string `json:"instagram,omitempty"`
	Wechat              string `json:"wechat,omitempty"`
	Website             string `json:"website,omitempty"`
	Bank                string `json:"bank,omitempty"`
	SectorID            string `json:"sectorId,omitempty"`
	ProductID           string `json:"productId,omitempty"`
	ContactPerson       string `json:"contactPerson,omitempty"`
	ContactPersonStatus string `json:"contactPersonStatus,omitempty"`
	GoogleMaps          string `json:"googleMaps,omitempty"`
	Notes               string `json:"notes,omitempty"`
	IsActive            *int   `json:"isActive,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

func (Supplier) TableName() string { return "suppliers" }
