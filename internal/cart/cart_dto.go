package cart

import "github.com/shopspring/decimal"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Option    string          `json:"option"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageURL  string          `json:"imageUrl"`
	StoreID   string          `json:"storeId" validate:"required"`
}

type UpdateQtyRequest struct {
	// Absolute quantity. Zero or negative removes the line.
	Qty int32 `json:"qty"`
}

// ==================== RESPONSE STRUCTS ====================

type AddItemResponse struct {
	LineID string `json:"lineId"`
	// Outcome is ADDED, INCREMENTED, or REPLACED_STORE. REPLACED_STORE
	// means the previous cart contents were discarded because the item
	// came from a different store; the UI should tell the user.
	Outcome   Outcome `json:"outcome"`
	Replaced  bool    `json:"cartReplaced"`
	ItemCount int     `json:"itemCount"`
}

type CartLineResponse struct {
	LineID    string          `json:"lineId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartDetailResponse struct {
	StoreID  string             `json:"storeId,omitempty"`
	Items    []CartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}
