// Package pricing computes order totals from a cart subtotal and a delivery
// tier selection. Fees are flat per tier and come from configuration.
package pricing

import (
	"zouqly-storefront/internal/config"
	"zouqly-storefront/internal/domain"
)

type Calculator struct {
	fees map[domain.DeliveryTier]int64
}

func New(fees config.DeliveryFees) *Calculator {
	return &Calculator{
		fees: map[domain.DeliveryTier]int64{
			domain.TierLocal:    fees.Local,
			domain.TierRegional: fees.Regional,
			domain.TierNational: fees.National,
		},
	}
}

// Quote is a priced order summary. Submittable is false until a valid
// delivery tier has been selected.
type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	DeliveryCharge int64 `json:"deliveryCharge"`
	Total          int64 `json:"total"`
	Submittable    bool  `json:"submittable"`
}

// Fee returns the flat fee for a tier. Unknown or unselected tiers report
// a zero fee and ok=false.
func (c *Calculator) Fee(tier domain.DeliveryTier) (int64, bool) {
	fee, ok := c.fees[tier]
	return fee, ok
}

// QuoteFor combines a cart subtotal with the tier's flat fee. The fee is
// independent of cart contents.
func (c *Calculator) QuoteFor(subtotal int64, tier domain.DeliveryTier) Quote {
	fee, ok := c.Fee(tier)
	return Quote{
		Subtotal:       subtotal,
		DeliveryCharge: fee,
		Total:          subtotal + fee,
		Submittable:    ok,
	}
}
