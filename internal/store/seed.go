package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/srecha/invoice-core/internal/models"
)

// Seeded administrator. The literal password is kept for compatibility with
// existing installs; the change_password command is the first-run flow for
// replacing it.
const (
	defaultAdminUsername = "BrankoFND"
	defaultAdminPassword = "MoskvaSlezamNeVeryt2024"
)

var defaultCategories = []string{
	"Zeleni Čaj",
	"Crni Čaj",
	"Printing",
	"Посуда",
	"Other",
}

var defaultSupplierSectors = []string{
	"Чай",
	"Упаковка",
	"Полиграфия",
	"Логистика",
	"Прочее",
}

// seed inserts reference rows into empty tables. Non-empty tables are left
// untouched, so re-running bootstrap never duplicates seed data.
func (s *Store) seed() error {
	if err := s.seedDefaultUser(); err != nil {
		return err
	}
	if err := s.seedDefaultCategories(); err != nil {
		return err
	}
	if err := s.seedDefaultSupplierSectors(); err != nil {
		return err
	}
	return s.seedCountries()
}

func (s *Store) seedDefaultUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:        uuid.NewString(),
		Username:  defaultAdminUsername,
		Password:  string(hash),
		Role:      "admin",
		CreatedAt: Now(),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}
	zap.L().Info("seeded default administrator", zap.String("username", defaultAdminUsername))
	return nil
}

func (s *Store) seedDefaultCategories() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	createdAt := Now()
	for _, name := range defaultCategories {
		c := models.Category{ID: uuid.NewString(), Name: name, CreatedAt: createdAt}
		if err := s.db.Create(&c).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded default categories", zap.Int("count", len(defaultCategories)))
	return nil
}

func (s *Store) seedDefaultSupplierSectors() error {
	var count int64
	if err := s.db.Model(&models.SupplierSector{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	createdAt := Now()
	for _, name := range defaultSupplierSectors {
		sec := models.SupplierSector{ID: uuid.NewString(), Name: name, CreatedAt: createdAt}
		if err := s.db.Create(&sec).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded default supplier sectors", zap.Int("count", len(defaultSupplierSectors)))
	return nil
}

func (s *Store) seedCountries() error {
	var count int64
	if err := s.db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	createdAt := Now()
	for _, c := range unMemberStates {
		row := models.Country{ID: uuid.NewString(), Name: c.name, Code: c.code, CreatedAt: createdAt}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded UN member states", zap.Int("count", len(unMemberStates)))
	return nil
}
