package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-swifteats-api/internal/messaging/kafka/producer"
	"go-swifteats-api/internal/outbox"
	"go-swifteats-api/internal/reminder"
)

func RunWorker() error {
	log.Println("[WORKER] Starting outbox processor...")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[WORKER] Database connected")

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	orderWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), "order.events", 5)
	if err != nil {
		return err
	}
	defer orderWriter.Close()

	reminderWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), "cart.reminders", 5)
	if err != nil {
		return err
	}
	defer reminderWriter.Close()
	log.Println("[WORKER] Kafka writers initialized")

	cfg := loadConfig()
	outboxRepo := outbox.NewRepository(db)
	reminderScheduler := reminder.NewScheduler(redisClient, cfg.ReminderDelay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, orderWriter)
	go reminder.Sweep(ctx, reminderScheduler, reminderWriter, time.Minute)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
