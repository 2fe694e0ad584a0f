package app

import (
	"database/sql"

	"go-swifteats-api/internal/address"
	"go-swifteats-api/internal/cart"
	"go-swifteats-api/internal/order"
	"go-swifteats-api/internal/order/adapters"
	"go-swifteats-api/internal/outbox"
	"go-swifteats-api/internal/pricing"
	"go-swifteats-api/internal/reminder"
	"go-swifteats-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, cfg Config) {
	// --- Repositories ---
	storeRepo := store.NewRepository(db)
	addressRepo := address.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	orderRepo := order.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Collaborators ---
	reminderScheduler := reminder.NewScheduler(rdb, cfg.ReminderDelay)

	// --- Services ---
	storeService := store.NewService(storeRepo)
	addressService := address.NewService(addressRepo)
	cartService := cart.NewService(db, cartRepo, reminderScheduler)
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		CartSvc:    cartService,
		StoreSvc:   storeService,
		Addresses:  adapters.NewAddressAdapter(addressService),
		Pricing:    pricing.DefaultConfig(),
		ServiceFee: decimal.NewFromInt(cfg.ServiceFee),
	})

	// --- Handlers ---
	storeHandler := store.NewHandler(storeService)
	addressHandler := address.NewHandler(addressService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		store.RegisterRoutes(api, storeHandler)
		address.RegisterRoutes(api, addressHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler, rdb)
	}
}
