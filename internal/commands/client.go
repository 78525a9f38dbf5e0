package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/srecha/invoice-core/internal/models"
	"github.com/srecha/invoice-core/internal/store"
)

type ClientCommands struct {
	DB *gorm.DB
}

func NewClientCommands(db *gorm.DB) *ClientCommands { return &ClientCommands{DB: db} }

func (h *ClientCommands) Register(d *Dispatcher) {
	d.Handle("get_clients", h.list)
	d.Handle("create_client", h.create)
	d.Handle("update_client", h.update)
	d.Handle("delete_client", h.delete)
}

func (h *ClientCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	clients := make([]models.Client, 0)
	if err := h.DB.WithContext(ctx).Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (h *ClientCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Client models.Client `json:"client"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode client: %w", err)
	}
	c := args.Client
	c.ID = 0
	c.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

func (h *ClientCommands) update(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Client models.Client `json:"client"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode client: %w", err)
	}
	c := args.Client
	if c.ID == 0 {
		return nil, fmt.Errorf("client %w", ErrMissingID)
	}
	err := h.DB.WithContext(ctx).Model(&models.Client{}).Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at").Updates(&c).Error
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (h *ClientCommands) delete(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode client id: %w", err)
	}
	// Hard delete by contract: invoices keep their client_name snapshot.
	if err := h.DB.WithContext(ctx).Delete(&models.Client{}, args.ID).Error; err != nil {
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return nil, nil
}
