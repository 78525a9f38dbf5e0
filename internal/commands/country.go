package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/srecha/invoice-core/internal/models"
)

type CountryCommands struct {
	DB *gorm.DB
}

func NewCountryCommands(db *gorm.DB) *CountryCommands { return &CountryCommands{DB: db} }

func (h *CountryCommands) Register(d *Dispatcher) {
	d.Handle("get_countries", h.list)
}

func (h *CountryCommands) list(ctx context.Context, _ json.RawMessage) (any, error) {
	countries := make([]models.Country, 0)
	if err := h.DB.WithContext(ctx).Order("name ASC").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}
