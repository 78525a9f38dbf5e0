package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srecha/invoice-core/internal/models"
	"github.com/srecha/invoice-core/internal/store"
)

type DeliveryCommands struct {
	DB *gorm.DB
}

func NewDeliveryCommands(db *gorm.DB) *DeliveryCommands { return &DeliveryCommands{DB: db} }

func (h *DeliveryCommands) Register(d *Dispatcher) {
	d.Handle("get_deliveries", h.list)
	d.Handle("create_delivery", h.create)
}

func (h *DeliveryCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	deliveries := make([]models.Delivery, 0)
	if err := h.DB.WithContext(ctx).Order("created_at DESC").Find(&deliveries).Error; err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

func (h *DeliveryCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Delivery models.Delivery       `json:"delivery"`
		Items    []models.DeliveryItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode delivery: %w", err)
	}
	del := args.Delivery
	del.ID = uuid.NewString()
	del.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&del).Error; err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	for i := range args.Items {
		item := args.Items[i]
		item.ID = uuid.NewString()
		item.DeliveryID = del.ID
		if err := h.DB.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, fmt.Errorf("create delivery item: %w", err)
		}
	}
	return del.ID, nil
}
