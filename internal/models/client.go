package models

// Client entity. Numeric flags (IsManualAddress, Installment, Showcase, Bar)
// are stored as small integers, not booleans; some shells already write 2/3
// for tri-states and those values pass through untouched.
type Client struct {
	ID                  int64  `gorm:"primaryKey" json:"id,omitempty"`
	Name                string `json:"name"`
	LegalName           string `json:"legalName,omitempty"`
	MB                  string `gorm:"column:mb" json:"mb"`
	PIB                 string `gorm:"column:pib" json:"pib,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	PostalCode          string `json:"postalCode,omitempty"`
	Country             string `json:"country,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	TaxID               string `json:"taxId,omitempty"`
	Bank                string `json:"bank,omitempty"`
	ClientType          string `json:"clientType,omitempty"`
	Abbreviation        string `json:"abbreviation,omitempty"`
	Municipality        string `json:"municipality,omitempty"`
	Street              string `json:"street,omitempty"`
	HouseNumber         string `json:"houseNumber,omitempty"`
	IsManualAddress     int    `json:"isManualAddress"`
	GoogleMaps          string `json:"googleMaps,omitempty"`
	ContactPerson       string `json:"contactPerson,omitempty"`
	ContactPersonStatus string `json:"contactPersonStatus,omitempty"`
	Telegram            string `json:"telegram,omitempty"`
	Instagram           string `json:"instagram,omitempty"`
	Installment         int    `json:"installment"`
	InstallmentTerm     *int   `json:"installmentTerm,omitempty"`
	Showcase            int    `json:"showcase"`
	Bar                 int    `json:"bar"`
	Notes               string `json:"notes,omitempty"`
	Contact             string `json:"contact,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

func (Client) TableName() string { return "clients" }
