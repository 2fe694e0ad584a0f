package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedMenuItems attaches a small menu to every seeded store. Prices are in
// Guyanese dollars.
func SeedMenuItems(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT id, name FROM stores`)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	type storeRef struct {
		ID   uuid.UUID
		Name string
	}
	var stores []storeRef
	for rows.Next() {
		var s storeRef
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return err
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	menu := []struct {
		Name  string
		Price int64
	}{
		{"Chicken Curry with Roti", 1500},
		{"Pepperpot with Plait Bread", 1800},
		{"Cook-up Rice", 1200},
		{"Bake and Saltfish", 900},
		{"Pine Tart", 300},
		{"Mauby (large)", 400},
	}

	for _, s := range stores {
		for _, m := range menu {
			_, err := db.ExecContext(ctx,
				`INSERT INTO menu_items (id, store_id, name, price)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (store_id, name) DO UPDATE SET price = $4`,
				uuid.New(), s.ID, m.Name, decimal.NewFromInt(m.Price),
			)
			if err != nil {
				return fmt.Errorf("seed menu for %s: %w", s.Name, err)
			}
		}
		log.Printf("Seeded %d menu items for %s", len(menu), s.Name)
	}

	return nil
}
