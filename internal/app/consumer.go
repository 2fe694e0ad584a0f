package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-swifteats-api/internal/cart"
	"go-swifteats-api/internal/messaging/kafka/consumer"
	"go-swifteats-api/internal/reminder"

	"github.com/segmentio/kafka-go"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting order events consumer...")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[CONSUMER] Database connected")

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	reminderScheduler := reminder.NewScheduler(redisClient, cfg.ReminderDelay)

	cartRepo := cart.NewRepository(db)
	cartService := cart.NewService(db, cartRepo, reminderScheduler)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
