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

type ProductCommands struct {
	DB *gorm.DB
}

func NewProductCommands(db *gorm.DB) *ProductCommands { return &ProductCommands{DB: db} }

func (h *ProductCommands) Register(d *Dispatcher) {
	d.Handle("get_products", h.list)
	d.Handle("get_product_by_code", h.getByCode)
	d.Handle("create_product", h.create)
	d.Handle("update_product", h.update)
	d.Handle("delete_product", h.delete)
}

func (h *ProductCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	products := make([]models.Product, 0)
	if err := h.DB.WithContext(ctx).
		Where("is_active = 1").Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// getByCode also finds soft-deleted products: invoice history references them
// by code regardless of the active flag. Absence is a null result, not an
// error.
func (h *ProductCommands) getByCode(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode product code: %w", err)
	}
	var p models.Product
	if err := h.DB.WithContext(ctx).Where("code = ?", args.Code).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

func (h *ProductCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Product models.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	p := args.Product
	p.ID = uuid.NewString()
	now := store.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	applyProductDefaults(&p)
	if err := h.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (h *ProductCommands) update(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID      string         `json:"id"`
		Product models.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	if args.ID == "" {
		return nil, fmt.Errorf("product %w", ErrMissingID)
	}
	p := args.Product
	p.ID = args.ID
	p.UpdatedAt = store.Now()
	applyProductDefaults(&p)
	err := h.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").Updates(&p).Error
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (h *ProductCommands) delete(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode product id: %w", err)
	}
	// Soft delete: the row stays behind for historical documents.
	if err := h.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", args.ID).Update("is_active", 0).Error; err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return nil, nil
}

// applyProductDefaults fills the documented defaults for omitted fields:
// price 0, is_active 1.
func applyProductDefaults(p *models.Product) {
	if p.Price == nil {
		p.Price = new(float64)
	}
	if p.IsActive == nil {
		active := 1
		p.IsActive = &active
	}
}
