package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-swifteats-api/internal/cart"
)

type orderPlacedPayload struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
}

// handleOrderPlaced empties the customer's cart once their order is in.
// Clearing also cancels any pending abandoned-cart reminder.
func handleOrderPlaced(ctx context.Context, payload []byte, cartService cart.Service) error {
	var data orderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Clearing cart for user %s (order %s)", data.UserID, data.OrderID)

	if err := cartService.Clear(ctx, data.UserID); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Cart cleared for user %s", data.UserID)
	return nil
}
