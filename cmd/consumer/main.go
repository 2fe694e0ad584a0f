package main

import (
	"log"

	"go-swifteats-api/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunConsumer(); err != nil {
		log.Fatalf("[CONSUMER] %v", err)
	}
}
