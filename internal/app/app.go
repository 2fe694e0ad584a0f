package app

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 2. Register Modules & Routes
	registerModules(router, db, redisClient, loadConfig())

	return nil
}

// Config holds the tunables the API reads from the environment.
type Config struct {
	ServiceFee    int64
	ReminderDelay time.Duration
}

func loadConfig() Config {
	cfg := Config{
		ServiceFee:    200,
		ReminderDelay: 24 * time.Hour,
	}

	if v := os.Getenv("SERVICE_FEE"); v != "" {
		if fee, err := strconv.ParseInt(v, 10, 64); err == nil && fee >= 0 {
			cfg.ServiceFee = fee
		}
	}
	if v := os.Getenv("REMINDER_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ReminderDelay = d
		}
	}

	return cfg
}
