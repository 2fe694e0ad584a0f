package store

import (
	"context"
	"database/sql"

	"go-swifteats-api/internal/shared/database"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store_repo.go -destination=../mock/store/store_repo_mock.go -package=mock

// StoreRow is the stores table projection. Latitude and Longitude are the
// pickup point fed into delivery pricing.
type StoreRow struct {
	ID        uuid.UUID
	Name      string
	ImageURL  sql.NullString
	Latitude  float64
	Longitude float64
	Zone      sql.NullString
	IsActive  bool
}

type Repository interface {
	List(ctx context.Context) ([]StoreRow, error)
	GetByID(ctx context.Context, id uuid.UUID) (StoreRow, error)
}

type repository struct {
	db database.DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]StoreRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, image_url, latitude, longitude, zone, is_active
		 FROM stores WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []StoreRow
	for rows.Next() {
		var s StoreRow
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageURL, &s.Latitude, &s.Longitude, &s.Zone, &s.IsActive); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (StoreRow, error) {
	var s StoreRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, image_url, latitude, longitude, zone, is_active
		 FROM stores WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.ImageURL, &s.Latitude, &s.Longitude, &s.Zone, &s.IsActive)
	return s, err
}
