package commands

import (
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestDeliveryCreateAndList(t *testing.T) {
	d, st := setupDispatcher(t)

	var id string
	call(t, d, "create_delivery", `{
		"delivery": {"deliveryNumber":"D-2024/01","clientId":"c1","clientName":"Чайный Дом","date":"2024-05-10","status":"pending"},
		"items": [
			{"productId":"p1","productName":"Зеленый чай","quantity":5},
			{"productId":"p2","productName":"Посуда","quantity":1}
		]
	}`, &id)
	if id == "" {
		t.Fatalf("create_delivery returned empty id")
	}

	var list []models.Delivery
	call(t, d, "get_deliveries", `{}`, &list)
	if len(list) != 1 || list[0].DeliveryNumber != "D-2024/01" {
		t.Fatalf("unexpected deliveries: %#v", list)
	}

	var itemCount int64
	st.DB().Model(&models.DeliveryItem{}).Where("delivery_id = ?", id).Count(&itemCount)
	if itemCount != 2 {
		t.Fatalf("expected 2 delivery items, got %d", itemCount)
	}
}

func TestDeliveryListEmptyIsArray(t *testing.T) {
	d, _ := setupDispatcher(t)

	var list []models.Delivery
	call(t, d, "get_deliveries", `{}`, &list)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty slice, got %#v", list)
	}
}
