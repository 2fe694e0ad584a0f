package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"go-swifteats-api/internal/geo"
	"go-swifteats-api/internal/zone"

	"github.com/google/uuid"
)

// SeedStores inserts a set of Georgetown-area restaurants so the quote and
// checkout flows have real pickup coordinates to price against.
func SeedStores(db *sql.DB) error {
	ctx := context.Background()

	stores := []struct {
		Name     string
		Lat, Lon float64
	}{
		{"Oasis Cafe", 6.8078, -58.1620},
		{"Shanta's Roti Shop", 6.8131, -58.1555},
		{"German's Restaurant", 6.8165, -58.1602},
		{"Grand Coastal Grill", 6.7820, -58.0510},
		{"Providence Food Court", 6.7610, -58.1890},
	}

	for _, s := range stores {
		verdict := zone.Locate(geo.Point{Lat: s.Lat, Lon: s.Lon})

		var zoneVal sql.NullString
		if verdict.Allowed {
			zoneVal = sql.NullString{String: verdict.Zone, Valid: true}
		}

		_, err := db.ExecContext(ctx,
			`INSERT INTO stores (id, name, latitude, longitude, zone, is_active)
			 VALUES ($1, $2, $3, $4, $5, TRUE)
			 ON CONFLICT (name) DO UPDATE SET latitude = $3, longitude = $4, zone = $5`,
			uuid.New(), s.Name, s.Lat, s.Lon, zoneVal,
		)
		if err != nil {
			return fmt.Errorf("seed store %s: %w", s.Name, err)
		}
		log.Printf("Seeded store %s (%s)", s.Name, verdict.Zone)
	}

	return nil
}
