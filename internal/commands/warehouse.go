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

type WarehouseCommands struct {
	DB *gorm.DB
}

func NewWarehouseCommands(db *gorm.DB) *WarehouseCommands { return &WarehouseCommands{DB: db} }

func (h *WarehouseCommands) Register(d *Dispatcher) {
	d.Handle("get_warehouse_groups", h.listGroups)
	d.Handle("create_warehouse_group", h.createGroup)
	d.Handle("update_warehouse_group", h.updateGroup)
	d.Handle("delete_warehouse_group", h.deleteGroup)
	d.Handle("delete_warehouse_group_item", h.deleteGroupItem)
}

func (h *WarehouseCommands) listGroups(ctx context.Context, _ json.RawMessage) (any, error) {
	groups := make([]models.WarehouseGroup, 0)
	if err := h.DB.WithContext(ctx).Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list warehouse groups: %w", err)
	}
	return groups, nil
}

func (h *WarehouseCommands) createGroup(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Group models.WarehouseGroup `json:"group"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode warehouse group: %w", err)
	}
	g := args.Group
	g.ID = uuid.NewString()
	g.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, fmt.Errorf("create warehouse group: %w", err)
	}
	return g.ID, nil
}

func (h *WarehouseCommands) updateGroup(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID    string                `json:"id"`
		Group models.WarehouseGroup `json:"group"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode warehouse group: %w", err)
	}
	if args.ID == "" {
		return nil, fmt.Errorf("warehouse group %w", ErrMissingID)
	}
	err := h.DB.WithContext(ctx).Model(&models.WarehouseGroup{}).Where("id = ?", args.ID).
		Updates(map[string]any{"name": args.Group.Name, "description": args.Group.Description}).Error
	if err != nil {
		return nil, fmt.Errorf("update warehouse group: %w", err)
	}
	return nil, nil
}

func (h *WarehouseCommands) deleteGroup(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode warehouse group id: %w", err)
	}
	db := h.DB.WithContext(ctx)
	if err := db.Where("group_id = ?", args.ID).Delete(&models.WarehouseItem{}).Error; err != nil {
		return nil, fmt.Errorf("delete warehouse items: %w", err)
	}
	if err := db.Where("id = ?", args.ID).Delete(&models.WarehouseGroup{}).Error; err != nil {
		return nil, fmt.Errorf("delete warehouse group: %w", err)
	}
	return nil, nil
}

// deleteGroupItem removes a single item identified by the (group, product)
// pair; items carry no caller-visible id of their own.
func (h *WarehouseCommands) deleteGroupItem(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		GroupID   string `json:"groupId"`
		ProductID string `json:"productId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode warehouse item key: %w", err)
	}
	if err := h.DB.WithContext(ctx).
		Where("group_id = ? AND product_id = ?", args.GroupID, args.ProductID).
		Delete(&models.WarehouseItem{}).Error; err != nil {
		return nil, fmt.Errorf("delete warehouse item: %w", err)
	}
	return nil, nil
}
