package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srecha/invoice-core/internal/models"
	"github.com/srecha/invoice-core/internal/store"
)

type InvoiceCommands struct {
	DB *gorm.DB
}

func NewInvoiceCommands(db *gorm.DB) *InvoiceCommands { return &InvoiceCommands{DB: db} }

func (h *InvoiceCommands) Register(d *Dispatcher) {
	d.Handle("get_invoices", h.list)
	d.Handle("get_invoice_by_id", h.getByID)
	d.Handle("create_invoice", h.create)
	d.Handle("update_invoice_status", h.updateStatus)
	d.Handle("update_invoice", h.update)
	d.Handle("delete_invoice", h.delete)
	d.Handle("get_client_history", h.clientHistory)
}

func (h *InvoiceCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	invoices := make([]models.Invoice, 0)
	if err := h.DB.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (h *InvoiceCommands) getByID(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice id: %w", err)
	}
	var inv models.Invoice
	if err := h.DB.WithContext(ctx).Where("id = ?", args.ID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	// no ORDER BY: items come back in insertion order
	items := make([]models.InvoiceItem, 0)
	if err := h.DB.WithContext(ctx).Where("invoice_id = ?", args.ID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	return models.InvoiceWithItems{Invoice: inv, Items: items}, nil
}

// create inserts the parent row, then each item with a fresh id. The sequence
// is deliberately not wrapped in a transaction: a midway failure leaves a
// partial invoice, matching the shipped behaviour.
func (h *InvoiceCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Invoice models.Invoice       `json:"invoice"`
		Items   []models.InvoiceItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}
	inv := args.Invoice
	inv.ID = uuid.NewString()
	inv.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&inv).Error; err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	for i := range args.Items {
		item := args.Items[i]
		item.ID = uuid.NewString()
		item.InvoiceID = inv.ID
		if err := h.DB.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, fmt.Errorf("create invoice item: %w", err)
		}
	}
	return inv.ID, nil
}

func (h *InvoiceCommands) updateStatus(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice status: %w", err)
	}
	if err := h.DB.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", args.ID).Update("status", args.Status).Error; err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	return nil, nil
}

func (h *InvoiceCommands) update(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID      string         `json:"id"`
		Invoice models.Invoice `json:"invoice"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}
	if args.ID == "" {
		return nil, fmt.Errorf("invoice %w", ErrMissingID)
	}
	inv := args.Invoice
	inv.ID = args.ID
	err := h.DB.WithContext(ctx).Model(&models.Invoice{}).Where("id = ?", inv.ID).
		Select("*").Omit("id", "created_at").Updates(&inv).Error
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

func (h *InvoiceCommands) delete(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode invoice id: %w", err)
	}
	db := h.DB.WithContext(ctx)
	if err := db.Where("invoice_id = ?", args.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		return nil, fmt.Errorf("delete invoice items: %w", err)
	}
	if err := db.Where("id = ?", args.ID).Delete(&models.Invoice{}).Error; err != nil {
		return nil, fmt.Errorf("delete invoice: %w", err)
	}
	return nil, nil
}

func (h *InvoiceCommands) clientHistory(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ClientID string `json:"clientId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode client id: %w", err)
	}
	invoices := make([]models.Invoice, 0)
	if err := h.DB.WithContext(ctx).Where("client_id = ?", args.ClientID).
		Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list client history: %w", err)
	}
	return invoices, nil
}
