package order

import (
	"context"
	"database/sql"
	"time"

	"go-swifteats-api/internal/shared/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock

type OrderRow struct {
	ID          uuid.UUID
	OrderNumber string
	UserID      uuid.UUID
	StoreID     uuid.UUID
	AddressID   uuid.UUID
	Status      string
	DistanceKm  float64
	Subtotal    decimal.Decimal
	ServiceFee  decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Note        sql.NullString
	PlacedAt    time.Time
}

type ItemRow struct {
	LineID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, row OrderRow) error
	InsertItem(ctx context.Context, orderID uuid.UUID, item ItemRow) error

	GetByID(ctx context.Context, id uuid.UUID) (OrderRow, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]ItemRow, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]OrderRow, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
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

func (r *repository) Create(ctx context.Context, row OrderRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders
		   (id, order_number, user_id, store_id, address_id, status,
		    distance_km, subtotal, service_fee, delivery_fee, total, note, placed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13)`,
		row.ID, row.OrderNumber, row.UserID, row.StoreID, row.AddressID, row.Status,
		row.DistanceKm, row.Subtotal, row.ServiceFee, row.DeliveryFee, row.Total,
		row.Note.String, row.PlacedAt,
	)
	return err
}

func (r *repository) InsertItem(ctx context.Context, orderID uuid.UUID, item ItemRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO order_items (id, order_id, line_id, name, unit_price, quantity)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), orderID, item.LineID, item.Name, item.UnitPrice, item.Quantity,
	)
	return err
}

const orderColumns = `id, order_number, user_id, store_id, address_id, status,
	distance_km, subtotal, service_fee, delivery_fee, total, note, placed_at`

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (OrderRow, error) {
	var row OrderRow
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.OrderNumber, &row.UserID, &row.StoreID, &row.AddressID, &row.Status,
		&row.DistanceKm, &row.Subtotal, &row.ServiceFee, &row.DeliveryFee, &row.Total,
		&row.Note, &row.PlacedAt)
	return row, err
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]ItemRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT line_id, name, unit_price, quantity
		 FROM order_items WHERE order_id = $1 ORDER BY created_at`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.LineID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]OrderRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE user_id = $1 ORDER BY placed_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []OrderRow
	for rows.Next() {
		var row OrderRow
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.UserID, &row.StoreID, &row.AddressID, &row.Status,
			&row.DistanceKm, &row.Subtotal, &row.ServiceFee, &row.DeliveryFee, &row.Total,
			&row.Note, &row.PlacedAt); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}
	return orders, rows.Err()
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`,
		userID,
	).Scan(&count)
	return count, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
