package cart

import (
	"testing"

	"zouqly-storefront/internal/domain"
)

var (
	almonds = domain.Product{ID: "ALM125", Name: "Premium Almonds", Weight: "125 gm", Price: 250}
	cashews = domain.Product{ID: "CAS100", Name: "Premium Cashews", Weight: "100 gm", Price: 250}
	mix     = domain.Product{ID: "MIX70", Name: "Premium Mix Dryfruits", Weight: "70 gm", Price: 120}
)

func TestAddItemMergesLines(t *testing.T) {
	c := New()
	c.AddItem(almonds, 1)
	c.AddItem(almonds, 2)
	c.AddItem(almonds, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", lines[0].Quantity)
	}
}

func TestAddItemDefaultsLowQuantityToOne(t *testing.T) {
	c := New()
	c.AddItem(almonds, 0)
	c.AddItem(cashews, -3)

	for _, l := range c.Lines() {
		if l.Quantity != 1 {
			t.Fatalf("expected quantity 1 for %s, got %d", l.Product.ID, l.Quantity)
		}
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.AddItem(cashews, 1)
	c.AddItem(almonds, 1)
	c.AddItem(mix, 1)
	c.AddItem(cashews, 1) // merge must not reorder

	want := []string{"CAS100", "ALM125", "MIX70"}
	lines := c.Lines()
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, id := range want {
		if lines[i].Product.ID != id {
			t.Fatalf("line %d: expected %s, got %s", i, id, lines[i].Product.ID)
		}
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	c := New()
	c.AddItem(almonds, 5)

	for _, q := range []int{0, -1, -100} {
		c.UpdateQuantity("ALM125", q)
		lines := c.Lines()
		if len(lines) != 1 {
			t.Fatalf("line removed on quantity %d", q)
		}
		if lines[0].Quantity != 1 {
			t.Fatalf("expected clamp to 1 on quantity %d, got %d", q, lines[0].Quantity)
		}
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(almonds, 2)
	c.UpdateQuantity("NOPE", 9)
	if c.Count() != 2 {
		t.Fatalf("expected count 2, got %d", c.Count())
	}
}

func TestRemoveThenReaddIsFresh(t *testing.T) {
	c := New()
	c.AddItem(almonds, 4)
	c.RemoveItem("ALM125")
	c.RemoveItem("ALM125") // second removal is a no-op
	c.AddItem(almonds, 3)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected fresh line with quantity 3, got %+v", lines)
	}
}

func TestCountAndSubtotal(t *testing.T) {
	c := New()
	if c.Count() != 0 || c.Subtotal() != 0 {
		t.Fatalf("empty cart should report zero aggregates")
	}

	c.AddItem(mix, 2)     // 120 * 2
	c.AddItem(cashews, 1) // 250 * 1
	if c.Count() != 3 {
		t.Fatalf("expected count 3, got %d", c.Count())
	}
	if c.Subtotal() != 490 {
		t.Fatalf("expected subtotal 490, got %d", c.Subtotal())
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(almonds, 2)
	c.Clear()
	c.Clear()
	if !c.Empty() || c.Count() != 0 || c.Subtotal() != 0 {
		t.Fatalf("expected empty cart after repeated clears")
	}
}
