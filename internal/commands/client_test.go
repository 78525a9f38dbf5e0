package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestClientCreateAndList(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Client
	call(t, d, "create_client", `{"client":{"name":"Чайный Дом","mb":"12345678","pib":"987654321","city":"Beograd"}}`, &created)
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got %#v", created)
	}
	if created.CreatedAt == "" {
		t.Fatalf("missing created_at")
	}

	var list []models.Client
	call(t, d, "get_clients", `{}`, &list)
	if len(list) != 1 || list[0].Name != "Чайный Дом" || list[0].MB != "12345678" {
		t.Fatalf("unexpected list: %#v", list)
	}
}

func TestClientListOrderedNewestFirst(t *testing.T) {
	d, st := setupDispatcher(t)

	rows := []models.Client{
		{Name: "old", CreatedAt: "2024-01-01T00:00:00Z"},
		{Name: "new", CreatedAt: "2024-06-01T00:00:00Z"},
		{Name: "mid", CreatedAt: "2024-03-01T00:00:00Z"},
	}
	for i := range rows {
		if err := st.DB().Create(&rows[i]).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	var list []models.Client
	call(t, d, "get_clients", `{}`, &list)
	if len(list) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(list))
	}
	if list[0].Name != "new" || list[1].Name != "mid" || list[2].Name != "old" {
		t.Fatalf("wrong order: %s %s %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestClientUpdate(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Client
	call(t, d, "create_client", `{"client":{"name":"Before","installment":1,"installmentTerm":30}}`, &created)

	args, _ := json.Marshal(map[string]any{"client": map[string]any{
		"id": created.ID, "name": "After", "installment": 0,
	}})
	call(t, d, "update_client", string(args), nil)

	var list []models.Client
	call(t, d, "get_clients", `{}`, &list)
	if list[0].Name != "After" || list[0].Installment != 0 {
		t.Fatalf("update not applied: %#v", list[0])
	}
	// created_at survives a full-row update
	if list[0].CreatedAt != created.CreatedAt {
		t.Fatalf("created_at rewritten: %q -> %q", created.CreatedAt, list[0].CreatedAt)
	}
	// omitted installmentTerm clears the stored value
	if list[0].InstallmentTerm != nil {
		t.Fatalf("expected cleared installment term, got %v", *list[0].InstallmentTerm)
	}
}

func TestClientUpdateRequiresID(t *testing.T) {
	d, _ := setupDispatcher(t)

	_, err := d.Dispatch(context.Background(), "update_client",
		json.RawMessage(`{"client":{"name":"NoID"}}`))
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestClientDelete(t *testing.T) {
	d, _ := setupDispatcher(t)

	var created models.Client
	call(t, d, "create_client", `{"client":{"name":"Gone"}}`, &created)

	args, _ := json.Marshal(map[string]any{"id": created.ID})
	call(t, d, "delete_client", string(args), nil)

	var list []models.Client
	call(t, d, "get_clients", `{}`, &list)
	if len(list) != 0 {
		t.Fatalf("client still listed after delete: %#v", list)
	}
}
