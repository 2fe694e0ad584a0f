// Package pricing converts a delivery distance into a delivery price.
//
// Prices are Guyanese dollars, which have no fractional subunit; amounts
// are decimals so intermediate distance fees keep exact precision.
package pricing

import "github.com/shopspring/decimal"

// Config holds the linear delivery-fee model: a base charge, a per-kilometer
// rate, and a guaranteed minimum.
type Config struct {
	BasePrice    decimal.Decimal
	PricePerKm   decimal.Decimal
	MinimumTotal decimal.Decimal
}

// DefaultConfig is the production fee schedule (GYD).
func DefaultConfig() Config {
	return Config{
		BasePrice:    decimal.NewFromInt(800),
		PricePerKm:   decimal.NewFromInt(150),
		MinimumTotal: decimal.NewFromInt(800),
	}
}

// Breakdown reports how a delivery price was assembled.
type Breakdown struct {
	DistanceKm     float64         `json:"distanceKm"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	DistanceFee    decimal.Decimal `json:"distanceFee"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	MinimumApplied bool            `json:"minimumApplied"`
}

// DeliveryPrice returns max(BasePrice + distanceKm*PricePerKm, MinimumTotal).
// Monotonic non-decreasing in distance.
func (c Config) DeliveryPrice(distanceKm float64) decimal.Decimal {
	raw := c.BasePrice.Add(c.distanceFee(distanceKm))
	if raw.LessThan(c.MinimumTotal) {
		return c.MinimumTotal
	}
	return raw
}

// PriceBreakdown is DeliveryPrice with the floor decision made visible.
// MinimumApplied is true only when the floor strictly raised the total,
// so it is false at distance 0 where subtotal and total coincide.
func (c Config) PriceBreakdown(distanceKm float64) Breakdown {
	fee := c.distanceFee(distanceKm)
	subtotal := c.BasePrice.Add(fee)

	total := subtotal
	if total.LessThan(c.MinimumTotal) {
		total = c.MinimumTotal
	}

	return Breakdown{
		DistanceKm:     distanceKm,
		BasePrice:      c.BasePrice,
		DistanceFee:    fee,
		Subtotal:       subtotal,
		Total:          total,
		MinimumApplied: total.GreaterThan(subtotal),
	}
}

func (c Config) distanceFee(distanceKm float64) decimal.Decimal {
	return c.PricePerKm.Mul(decimal.NewFromFloat(distanceKm))
}
