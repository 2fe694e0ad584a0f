package reminder

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message is the payload published for a due reminder.
type Message struct {
	UserID    string `json:"user_id"`
	ItemCount int64  `json:"item_count"`
}

// Sweep polls for due reminders and publishes them to Kafka until the
// context is cancelled. Run it from the worker binary.
func Sweep(ctx context.Context, s *Scheduler, writer *kafka.Writer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[WORKER] Reminder sweeper started (polling every %s)", interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweepOnce(ctx, s, writer); err != nil {
				log.Printf("[WORKER] Error sweeping reminders: %v", err)
			}
		}
	}
}

func sweepOnce(ctx context.Context, s *Scheduler, writer *kafka.Writer) error {
	due, err := s.PopDue(ctx, time.Now(), 50)
	if err != nil {
		return err
	}

	for _, d := range due {
		payload, err := json.Marshal(Message{UserID: d.UserID, ItemCount: d.ItemCount})
		if err != nil {
			return err
		}

		msg := kafka.Message{
			Key:   []byte(d.UserID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte("CART_REMINDER")},
			},
		}
		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("[WORKER] Failed to publish reminder for user %s: %v", d.UserID, err)
			continue
		}

		log.Printf("[WORKER] Reminder published for user %s (%d items)", d.UserID, d.ItemCount)
	}

	return nil
}
