package consumer

import (
	"context"
	"log"

	"go-swifteats-api/internal/cart"

	"github.com/segmentio/kafka-go"
)

// ConsumeMessages processes order events until the context is cancelled.
// Unknown event types are committed and skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case "ORDER_PLACED":
			if err := handleOrderPlaced(ctx, msg.Value, cartService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_PLACED: %v", err)
				continue
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Printf("[CONSUMER] Error committing message: %v", err)
			}
		default:
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
