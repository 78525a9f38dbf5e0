package commands

import (
	"testing"

	"github.com/srecha/invoice-core/internal/models"
)

func TestCountriesSeededAndSorted(t *testing.T) {
	d, _ := setupDispatcher(t)

	var list []models.Country
	call(t, d, "get_countries", `{}`, &list)
	if len(list) != 193 {
		t.Fatalf("expected 193 countries, got %d", len(list))
	}
	seen := make(map[string]bool, len(list))
	for i, c := range list {
		if c.Code == "" || len(c.Code) != 2 {
			t.Fatalf("bad code for %q: %q", c.Name, c.Code)
		}
		if seen[c.Name] {
			t.Fatalf("duplicate country name %q", c.Name)
		}
		seen[c.Name] = true
		if i > 0 && list[i-1].Name > c.Name {
			t.Fatalf("countries not sorted: %q > %q", list[i-1].Name, c.Name)
		}
	}
}
