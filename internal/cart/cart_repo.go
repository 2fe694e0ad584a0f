package cart

import (
	"context"
	"database/sql"

	"go-swifteats-api/internal/shared/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock

// CartRow is the carts table projection. StoreID is NULL while the cart is
// empty.
type CartRow struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	StoreID sql.NullString
}

// ItemRow is the cart_items table projection.
type ItemRow struct {
	LineID    string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  sql.NullString
	Quantity  int32
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	GetByUserID(ctx context.Context, userID uuid.UUID) (CartRow, error)
	CreateCart(ctx context.Context, userID uuid.UUID) (CartRow, error)
	SetStore(ctx context.Context, cartID uuid.UUID, storeID string) error

	ListItems(ctx context.Context, cartID uuid.UUID) ([]ItemRow, error)
	CountItems(ctx context.Context, cartID uuid.UUID) (int64, error)

	InsertItem(ctx context.Context, cartID uuid.UUID, item ItemRow) error
	DeleteAllItems(ctx context.Context, cartID uuid.UUID) error
}

type repository struct {
	db database.DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (CartRow, error) {
	var row CartRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, store_id FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&row.ID, &row.UserID, &row.StoreID)
	return row, err
}

func (r *repository) CreateCart(ctx context.Context, userID uuid.UUID) (CartRow, error) {
	row := CartRow{ID: uuid.New(), UserID: userID}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO carts (id, user_id) VALUES ($1, $2)`,
		row.ID, userID,
	)
	return row, err
}

func (r *repository) SetStore(ctx context.Context, cartID uuid.UUID, storeID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE carts SET store_id = NULLIF($2, ''), updated_at = now() WHERE id = $1`,
		cartID, storeID,
	)
	return err
}

func (r *repository) ListItems(ctx context.Context, cartID uuid.UUID) ([]ItemRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT line_id, name, unit_price, image_url, quantity
		 FROM cart_items WHERE cart_id = $1 ORDER BY created_at`,
		cartID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.LineID, &it.Name, &it.UnitPrice, &it.ImageURL, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) CountItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`,
		cartID,
	).Scan(&count)
	return count, err
}

func (r *repository) InsertItem(ctx context.Context, cartID uuid.UUID, item ItemRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (id, cart_id, line_id, name, unit_price, image_url, quantity)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`,
		uuid.New(), cartID, item.LineID, item.Name, item.UnitPrice, item.ImageURL.String, item.Quantity,
	)
	return err
}

func (r *repository) DeleteAllItems(ctx context.Context, cartID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`,
		cartID,
	)
	return err
}
