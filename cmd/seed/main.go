package main

import (
	"database/sql"
	"log"
	"os"

	"go-swifteats-api/internal/shared/database/seed"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db, err := sql.Open("postgres", os.Getenv("DB_URL"))
	if err != nil {
		log.Fatal("Cannot connect to database:", err)
	}
	defer db.Close()

	if err := seed.SeedStores(db); err != nil {
		log.Fatal(err)
	}

	if err := seed.SeedMenuItems(db); err != nil {
		log.Fatal(err)
	}

	log.Println("Seeding complete")
}
