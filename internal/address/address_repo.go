package address

import (
	"context"
	"database/sql"

	"go-swifteats-api/internal/shared/database"

	"github.com/google/uuid"
)

//go:generate mockgen -source=address_repo.go -destination=../mock/address/address_repo_mock.go -package=mock

type AddressRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       string
	AddressText string
	Latitude    float64
	Longitude   float64
	Zone        sql.NullString
	Serviceable bool
}

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AddressRow, error)
	GetByID(ctx context.Context, id uuid.UUID) (AddressRow, error)
	Create(ctx context.Context, row AddressRow) error
	Update(ctx context.Context, row AddressRow) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

type repository struct {
	db database.DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]AddressRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, label, address_text, latitude, longitude, zone, serviceable
		 FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []AddressRow
	for rows.Next() {
		var a AddressRow
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.AddressText, &a.Latitude, &a.Longitude, &a.Zone, &a.Serviceable); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (AddressRow, error) {
	var a AddressRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, label, address_text, latitude, longitude, zone, serviceable
		 FROM addresses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.Label, &a.AddressText, &a.Latitude, &a.Longitude, &a.Zone, &a.Serviceable)
	return a, err
}

func (r *repository) Create(ctx context.Context, row AddressRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO addresses (id, user_id, label, address_text, latitude, longitude, zone, serviceable)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`,
		row.ID, row.UserID, row.Label, row.AddressText, row.Latitude, row.Longitude, row.Zone.String, row.Serviceable,
	)
	return err
}

func (r *repository) Update(ctx context.Context, row AddressRow) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE addresses
		 SET label = $3, address_text = $4, latitude = $5, longitude = $6,
		     zone = NULLIF($7, ''), serviceable = $8, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		row.ID, row.UserID, row.Label, row.AddressText, row.Latitude, row.Longitude, row.Zone.String, row.Serviceable,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
