package models

// Invoicing models. ClientName is a denormalised snapshot frozen at insert
// time: renaming or deleting the client must not rewrite issued documents.
type Invoice struct {
	ID            string  `gorm:"primaryKey" json:"id,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber"`
	DocumentType  string  `json:"documentType"`
	ClientID      string  `json:"clientId,omitempty"`
	ClientName    string  `json:"clientName,omitempty"`
	Date          string  `json:"date"`
	DueDate       string  `json:"dueDate,omitempty"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

type InvoiceItem struct {
	ID          string  `gorm:"primaryKey" json:"id,omitempty"`
	InvoiceID   string  `json:"invoiceId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }

// InvoiceWithItems is the get_invoice_by_id payload: the invoice fields
// flattened at the top level plus its items in insertion order.
type InvoiceWithItems struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}
