package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"zouqly-storefront/internal/domain"
)

//go:embed products.json
var seedJSON []byte

// Catalog is the immutable set of sellable products, loaded once at process
// start. All accessors are safe for concurrent use because nothing mutates
// after Load returns.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// Load builds a Catalog from the embedded seed data.
func Load() (*Catalog, error) {
	return Parse(bytes.NewReader(seedJSON))
}

// LoadFile builds a Catalog from a JSON file, replacing the embedded seed.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a JSON product list and validates catalog invariants:
// every id unique, every price positive.
func Parse(r io.Reader) (*Catalog, error) {
	var products []domain.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %q has non-positive price %d", p.ID, p.Price)
		}
		byID[p.ID] = i
	}

	return &Catalog{products: products, byID: byID}, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product for id, or domain.ErrNotFound.
func (c *Catalog) Get(id string) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := c.products[i]
	return &p, nil
}

// Categories returns the distinct product categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
