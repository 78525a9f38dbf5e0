package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/srecha/invoice-core/internal/models"
)

type AuthCommands struct {
	DB *gorm.DB
}

func NewAuthCommands(db *gorm.DB) *AuthCommands { return &AuthCommands{DB: db} }

func (h *AuthCommands) Register(d *Dispatcher) {
	d.Handle("login", h.login)
	d.Handle("change_password", h.changePassword)
}

func (h *AuthCommands) login(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode login args: %w", err)
	}

	var user models.User
	if err := h.DB.WithContext(ctx).Where("username = ?", args.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(args.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return models.User{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// changePassword is the first-run flow for replacing the seeded credential.
// It re-verifies the current password before storing a fresh hash.
func (h *AuthCommands) changePassword(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Username    string `json:"username"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("decode change_password args: %w", err)
	}
	if args.NewPassword == "" {
		return nil, errors.New("new password is required")
	}

	var user models.User
	if err := h.DB.WithContext(ctx).Where("username = ?", args.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(args.OldPassword)) != nil {
		return nil, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(args.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := h.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).Update("password", string(hash)).Error; err != nil {
		return nil, fmt.Errorf("store password: %w", err)
	}
	return nil, nil
}
