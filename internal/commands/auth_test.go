package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestLogin(t *testing.T) {
	d, _ := setupDispatcher(t)

	var user models.User
	call(t, d, "login", `{"username":"BrankoFND","password":"MoskvaSlezamNeVeryt2024"}`, &user)
	if user.Username != "BrankoFND" || user.Role != "admin" {
		t.Fatalf("unexpected user: %#v", user)
	}
	if user.ID == "" {
		t.Fatalf("missing user id")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	d, _ := setupDispatcher(t)

	_, err := d.Dispatch(context.Background(), "login",
		json.RawMessage(`{"username":"BrankoFND","password":"nope"}`))
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	d, _ := setupDispatcher(t)

	_, err := d.Dispatch(context.Background(), "login",
		json.RawMessage(`{"username":"ghost","password":"x"}`))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	d, _ := setupDispatcher(t)

	call(t, d, "change_password",
		`{"username":"BrankoFND","oldPassword":"MoskvaSlezamNeVeryt2024","newPassword":"NewSecret123"}`, nil)

	// Old password no longer works, new one does.
	_, err := d.Dispatch(context.Background(), "login",
		json.RawMessage(`{"username":"BrankoFND","password":"MoskvaSlezamNeVeryt2024"}`))
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	var user models.User
	call(t, d, "login", `{"username":"BrankoFND","password":"NewSecret123"}`, &user)
	if user.Role != "admin" {
		t.Fatalf("unexpected user after password change: %#v", user)
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	d, _ := setupDispatcher(t)

	_, err := d.Dispatch(context.Background(), "change_password",
		json.RawMessage(`{"username":"BrankoFND","oldPassword":"wrong","newPassword":"x"}`))
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
