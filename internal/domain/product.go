package domain

// Product is an immutable catalog entry. The catalog is loaded once at
// process start and never mutated afterwards.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Weight      string   `json:"weight"`
	Price       int64    `json:"price"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`
}
