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

type CategoryCommands struct {
	DB *gorm.DB
}

func NewCategoryCommands(db *gorm.DB) *CategoryCommands { return &CategoryCommands{DB: db} }

func (h *CategoryCommands) Register(d *Dispatcher) {
	d.Handle("get_categories", h.list)
	d.Handle("create_category", h.create)
	d.Handle("delete_category", h.delete)
	d.Handle("get_subcategories", h.listSubcategories)
	d.Handle("get_subcategories_by_category", h.listSubcategoriesByCategory)
	d.Handle("create_subcategory", h.createSubcategory)
	d.Handle("delete_subcategory", h.deleteSubcategory)
}

func (h *CategoryCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	categories := make([]models.Category, 0)
	if err := h.DB.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (h *CategoryCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Category models.Category `json:"category"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode category: %w", err)
	}
	c := args.Category
	c.ID = uuid.NewString()
	c.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// delete removes the category and all its subcategories. The cascade is
// application-level; a failure in between leaves the orphaned category
// behind, which the next delete attempt cleans up.
func (h *CategoryCommands) delete(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode category id: %w", err)
	}
	db := h.DB.WithContext(ctx)
	if err := db.Where("category_id = ?", args.ID).Delete(&models.Subcategory{}).Error; err != nil {
		return nil, fmt.Errorf("delete subcategories: %w", err)
	}
	if err := db.Where("id = ?", args.ID).Delete(&models.Category{}).Error; err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return nil, nil
}

func (h *CategoryCommands) listSubcategories(ctx context.Context, _ json.RawMessage) (any, error) {
	subcategories := make([]models.Subcategory, 0)
	if err := h.DB.WithContext(ctx).Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subcategories, nil
}

func (h *CategoryCommands) listSubcategoriesByCategory(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		CategoryID string `json:"categoryId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode category id: %w", err)
	}
	subcategories := make([]models.Subcategory, 0)
	if err := h.DB.WithContext(ctx).Where("category_id = ?", args.CategoryID).
		Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subcategories, nil
}

func (h *CategoryCommands) createSubcategory(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Subcategory models.Subcategory `json:"subcategory"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode subcategory: %w", err)
	}
	sc := args.Subcategory
	sc.ID = uuid.NewString()
	sc.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&sc).Error; err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return sc, nil
}

func (h *CategoryCommands) deleteSubcategory(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode subcategory id: %w", err)
	}
	if err := h.DB.WithContext(ctx).Where("id = ?", args.ID).Delete(&models.Subcategory{}).Error; err != nil {
		return nil, fmt.Errorf("delete subcategory: %w", err)
	}
	return nil, nil
}
