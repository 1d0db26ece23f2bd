package domain

import "time"

// DeliveryTier is one of the fixed delivery zones a customer picks at
// checkout. Each tier maps to a flat fee supplied by configuration.
type DeliveryTier string

const (
	TierNone     DeliveryTier = ""
	TierLocal    DeliveryTier = "local"
	TierRegional DeliveryTier = "regional"
	TierNational DeliveryTier = "national"
)

// OrderForm is the transient checkout input. It exists only for the
// duration of the checkout interaction and is never persisted.
type OrderForm struct {
	FullName string       `json:"fullName" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required"`
	Address  string       `json:"address" validate:"required"`
	City     string       `json:"city" validate:"required"`
	State    string       `json:"state" validate:"required"`
	Pincode  string       `json:"pincode" validate:"required"`
	Tier     DeliveryTier `json:"location" validate:"required,oneof=local regional national"`
	Notes    string       `json:"notes"`
}

// OrderItem is the per-line snapshot carried on an outbound order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Weight   string `json:"weight"`
}

// OrderRecord is the outbound-only order snapshot built once at submission
// time. It combines the form, the cart lines, and the computed totals; it
// is never stored locally.
type OrderRecord struct {
	Form           OrderForm
	Items          []OrderItem
	Subtotal       int64
	DeliveryCharge int64
	Total          int64
	PlacedAt       time.Time
}
