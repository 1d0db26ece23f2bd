package catalog

import (
	"errors"
	"strings"
	"testing"

	"zouqly-storefront/internal/domain"
)

func TestLoadSeed(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatalf("expected seed products, got none")
	}
	for _, p := range c.List() {
		if p.Price <= 0 {
			t.Fatalf("product %s has non-positive price %d", p.ID, p.Price)
		}
	}
}

func TestGet(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := c.Get("MIX70")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Premium Mix Dryfruits" || p.Price != 120 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := c.Get("NOPE"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseRejectsDuplicateID(t *testing.T) {
	in := `[{"id":"A","name":"a","price":10,"category":"x"},{"id":"A","name":"b","price":20,"category":"x"}]`
	if _, err := Parse(strings.NewReader(in)); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestParseRejectsNonPositivePrice(t *testing.T) {
	in := `[{"id":"A","name":"a","price":0,"category":"x"}]`
	if _, err := Parse(strings.NewReader(in)); err == nil {
		t.Fatalf("expected price validation error")
	}
}

func TestCategoriesDistinctSorted(t *testing.T) {
	in := `[
		{"id":"A","name":"a","price":10,"category":"Walnuts"},
		{"id":"B","name":"b","price":10,"category":"Almonds"},
		{"id":"C","name":"c","price":10,"category":"Walnuts"}
	]`
	c, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Categories()
	if len(got) != 2 || got[0] != "Almonds" || got[1] != "Walnuts" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
