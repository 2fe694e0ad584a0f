package order

import (
	"time"

	"go-swifteats-api/internal/pricing"
	"go-swifteats-api/internal/zone"

	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

type QuoteRequest struct {
	StoreID   string `form:"storeId" binding:"required"`
	AddressID string `form:"addressId" binding:"required"`
}

type CheckoutRequest struct {
	AddressID string `json:"addressId" binding:"required"`
	Note      string `json:"note"`
}

// ==================== RESPONSE STRUCTS ====================

// QuoteResponse prices a prospective delivery. Pricing fields are only set
// when the address is inside the service area.
type QuoteResponse struct {
	Verdict    zone.Verdict       `json:"verdict"`
	DistanceKm float64            `json:"distanceKm,omitempty"`
	Delivery   *pricing.Breakdown `json:"delivery,omitempty"`
	ServiceFee decimal.Decimal    `json:"serviceFee"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	StoreID     string              `json:"storeId"`
	AddressID   string              `json:"addressId"`
	DistanceKm  float64             `json:"distanceKm"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	ServiceFee  decimal.Decimal     `json:"serviceFee"`
	DeliveryFee decimal.Decimal     `json:"deliveryFee"`
	Total       decimal.Decimal     `json:"total"`
	Note        string              `json:"note,omitempty"`
	PlacedAt    time.Time           `json:"placedAt"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	LineID    string          `json:"lineId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PlacedEvent is the ORDER_PLACED outbox payload. The consumer clears the
// customer's cart when it arrives.
type PlacedEvent struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
}
