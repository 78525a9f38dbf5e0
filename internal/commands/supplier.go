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

type SupplierCommands struct {
	DB *gorm.DB
}

func NewSupplierCommands(db *gorm.DB) *SupplierCommands { return &SupplierCommands{DB: db} }

func (h *SupplierCommands) Register(d *Dispatcher) {
	d.Handle("get_supplier_sectors", h.listSectors)
	d.Handle("create_supplier_sector", h.createSector)
	d.Handle("delete_supplier_sector", h.deleteSector)
	d.Handle("get_supplier_products", h.listProducts)
	d.Handle("get_supplier_products_by_sector", h.listProductsBySector)
	d.Handle("create_supplier_product", h.createProduct)
	d.Handle("delete_supplier_product", h.deleteProduct)
	d.Handle("get_suppliers", h.list)
	d.Handle("create_supplier", h.create)
	d.Handle("update_supplier", h.update)
	d.Handle("delete_supplier", h.delete)
}

func (h *SupplierCommands) listSectors(ctx context.Context, _ json.RawMessage) (any, error) {
	sectors := make([]models.SupplierSector, 0)
	if err := h.DB.WithContext(ctx).Order("name ASC").Find(&sectors).Error; err != nil {
		return nil, fmt.Errorf("list supplier sectors: %w", err)
	}
	return sectors, nil
}

func (h *SupplierCommands) createSector(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Sector models.SupplierSector `json:"sector"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier sector: %w", err)
	}
	sec := args.Sector
	sec.ID = uuid.NewString()
	sec.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&sec).Error; err != nil {
		return nil, fmt.Errorf("create supplier sector: %w", err)
	}
	return sec, nil
}

func (h *SupplierCommands) deleteSector(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier sector id: %w", err)
	}
	db := h.DB.WithContext(ctx)
	if err := db.Where("sector_id = ?", args.ID).Delete(&models.SupplierProduct{}).Error; err != nil {
		return nil, fmt.Errorf("delete supplier products: %w", err)
	}
	if err := db.Where("id = ?", args.ID).Delete(&models.SupplierSector{}).Error; err != nil {
		return nil, fmt.Errorf("delete supplier sector: %w", err)
	}
	return nil, nil
}

func (h *SupplierCommands) listProducts(ctx context.Context, _ json.RawMessage) (any, error) {
	products := make([]models.SupplierProduct, 0)
	if err := h.DB.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list supplier products: %w", err)
	}
	return products, nil
}

func (h *SupplierCommands) listProductsBySector(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		SectorID string `json:"sectorId"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode sector id: %w", err)
	}
	products := make([]models.SupplierProduct, 0)
	if err := h.DB.WithContext(ctx).Where("sector_id = ?", args.SectorID).
		Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list supplier products: %w", err)
	}
	return products, nil
}

func (h *SupplierCommands) createProduct(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Product models.SupplierProduct `json:"product"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier product: %w", err)
	}
	p := args.Product
	p.ID = uuid.NewString()
	p.CreatedAt = store.Now()
	if err := h.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create supplier product: %w", err)
	}
	return p, nil
}

func (h *SupplierCommands) deleteProduct(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier product id: %w", err)
	}
	if err := h.DB.WithContext(ctx).Where("id = ?", args.ID).
		Delete(&models.SupplierProduct{}).Error; err != nil {
		return nil, fmt.Errorf("delete supplier product: %w", err)
	}
	return nil, nil
}

func (h *SupplierCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	suppliers := make([]models.Supplier, 0)
	if err := h.DB.WithContext(ctx).
		Where("is_active = 1").Order("created_at DESC").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

func (h *SupplierCommands) create(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Supplier models.Supplier `json:"supplier"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier: %w", err)
	}
	s := args.Supplier
	s.ID = 0
	s.CreatedAt = store.Now()
	if s.IsActive == nil {
		active := 1
		s.IsActive = &active
	}
	if err := h.DB.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return s, nil
}

// update never touches is_active; (de)activation goes through delete.
func (h *SupplierCommands) update(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Supplier models.Supplier `json:"supplier"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier: %w", err)
	}
	s := args.Supplier
	if s.ID == 0 {
		return nil, fmt.Errorf("supplier %w", ErrMissingID)
	}
	err := h.DB.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", s.ID).
		Select("*").Omit("id", "created_at", "is_active").Updates(&s).Error
	if err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return s, nil
}

func (h *SupplierCommands) delete(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode supplier id: %w", err)
	}
	if err := h.DB.WithContext(ctx).Model(&models.Supplier{}).
		Where("id = ?", args.ID).Update("is_active", 0).Error; err != nil {
		return nil, fmt.Errorf("delete supplier: %w", err)
	}
	return nil, nil
}
