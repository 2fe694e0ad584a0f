package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "go-swifteats-api/internal/auth/errors"
	"go-swifteats-api/internal/cart"
	carterrors "go-swifteats-api/internal/cart/errors"
	"go-swifteats-api/internal/geo"
	"go-swifteats-api/internal/outbox"
	"go-swifteats-api/internal/pricing"
	"go-swifteats-api/internal/store"
	"go-swifteats-api/internal/zone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock

const (
	StatusPlaced    = "PLACED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

type Service interface {
	Quote(ctx context.Context, userID string, req QuoteRequest) (QuoteResponse, error)
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error)
	List(ctx context.Context, userID string, page, limit int) ([]OrderResponse, int64, error)
	Detail(ctx context.Context, orderID, userID string) (OrderResponse, error)
	Cancel(ctx context.Context, orderID, userID string) error

	// Complete marks a placed order as delivered. Admin only; there is no
	// ownership check.
	Complete(ctx context.Context, orderID string) error
}

// AddressLookup is the delivery-address collaborator: it supplies the
// customer's coordinate and whether it is serviceable.
type AddressLookup interface {
	Get(ctx context.Context, addressID, userID string) (AddressInfo, error)
}

type AddressInfo struct {
	Location    geo.Point
	Serviceable bool
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	cartSvc    cart.Service
	storeSvc   store.Service
	addresses  AddressLookup
	pricing    pricing.Config
	serviceFee decimal.Decimal
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	CartSvc    cart.Service
	StoreSvc   store.Service
	Addresses  AddressLookup
	Pricing    pricing.Config
	// ServiceFee is the flat per-order fee added on top of merchandise
	// and delivery (GYD).
	ServiceFee decimal.Decimal
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.StoreSvc == nil {
		panic("store service cannot be nil")
	}
	if deps.Addresses == nil {
		panic("address lookup cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		cartSvc:    deps.CartSvc,
		storeSvc:   deps.StoreSvc,
		addresses:  deps.Addresses,
		pricing:    deps.Pricing,
		serviceFee: deps.ServiceFee,
		logger:     deps.Logger.Named("order.service"),
	}
}

func (s *service) Quote(ctx context.Context, userID string, req QuoteRequest) (QuoteResponse, error) {
	addr, err := s.addresses.Get(ctx, req.AddressID, userID)
	if err != nil {
		return QuoteResponse{}, err
	}

	verdict := zone.Locate(addr.Location)
	if !verdict.Allowed {
		return QuoteResponse{Verdict: verdict, ServiceFee: s.serviceFee}, nil
	}

	storeLoc, err := s.storeSvc.Location(ctx, req.StoreID)
	if err != nil {
		return QuoteResponse{}, err
	}

	distance := geo.Distance(storeLoc, addr.Location)
	breakdown := s.pricing.PriceBreakdown(distance)

	return QuoteResponse{
		Verdict:    verdict,
		DistanceKm: distance,
		Delivery:   &breakdown,
		ServiceFee: s.serviceFee,
	}, nil
}

func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, autherrors.ErrInvalidUserID
	}

	detail, err := s.cartSvc.Detail(ctx, userID)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(detail.Items) == 0 {
		return OrderResponse{}, carterrors.ErrCartEmpty
	}

	addr, err := s.addresses.Get(ctx, req.AddressID, userID)
	if err != nil {
		return OrderResponse{}, err
	}
	// Re-check the gate at checkout time; the stored flag may predate a
	// zone change.
	if verdict := zone.Locate(addr.Location); !verdict.Allowed || !addr.Serviceable {
		s.logger.Warn("checkout blocked: address outside service area",
			zap.String("user_id", userID),
			zap.String("address_id", req.AddressID),
		)
		return OrderResponse{}, ErrOutsideServiceArea
	}

	storeLoc, err := s.storeSvc.Location(ctx, detail.StoreID)
	if err != nil {
		return OrderResponse{}, err
	}
	storeID, err := uuid.Parse(detail.StoreID)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("cart has invalid store id %q: %w", detail.StoreID, err)
	}
	// The lookup above already rejected malformed ids.
	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("invalid address id: %w", err)
	}

	distance := geo.Distance(storeLoc, addr.Location)
	// GYD has no subunit; the delivery fee is charged in whole dollars.
	deliveryFee := s.pricing.DeliveryPrice(distance).Round(0)
	total := detail.Subtotal.Add(s.serviceFee).Add(deliveryFee)

	row := OrderRow{
		ID:          uuid.New(),
		OrderNumber: newOrderNumber(),
		UserID:      uid,
		StoreID:     storeID,
		AddressID:   addressID,
		Status:      StatusPlaced,
		DistanceKm:  distance,
		Subtotal:    detail.Subtotal,
		ServiceFee:  s.serviceFee,
		DeliveryFee: deliveryFee,
		Total:       total,
		PlacedAt:    time.Now().UTC(),
	}
	if req.Note != "" {
		row.Note = sql.NullString{String: req.Note, Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	if err := repo.Create(ctx, row); err != nil {
		return OrderResponse{}, err
	}
	for _, line := range detail.Items {
		if err := repo.InsertItem(ctx, row.ID, ItemRow{
			LineID:    line.LineID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}); err != nil {
			return OrderResponse{}, err
		}
	}

	payload, err := json.Marshal(PlacedEvent{OrderID: row.ID.String(), UserID: userID})
	if err != nil {
		return OrderResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.CreateEventParams{
		AggregateType: "ORDER",
		AggregateID:   row.ID,
		EventType:     "ORDER_PLACED",
		Payload:       payload,
	}); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", row.ID.String()),
		zap.String("order_number", row.OrderNumber),
		zap.String("user_id", userID),
		zap.Float64("distance_km", distance),
		zap.String("total", total.String()),
	)

	res := toResponse(row)
	for _, line := range detail.Items {
		res.Items = append(res.Items, OrderItemResponse{
			LineID:    line.LineID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	return res, nil
}

func (s *service) List(ctx context.Context, userID string, page, limit int) ([]OrderResponse, int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, autherrors.ErrInvalidUserID
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rows, err := s.repo.ListByUser(ctx, uid, int32(limit), int32((page-1)*limit))
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(ctx, uid)
	if err != nil {
		return nil, 0, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toResponse(row))
	}
	return orders, total, nil
}

func (s *service) Detail(ctx context.Context, orderID, userID string) (OrderResponse, error) {
	row, err := s.getOwned(ctx, orderID, userID)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := s.repo.GetItems(ctx, row.ID)
	if err != nil {
		return OrderResponse{}, err
	}

	res := toResponse(row)
	for _, it := range items {
		res.Items = append(res.Items, OrderItemResponse{
			LineID:    it.LineID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.UnitPrice.Mul(decimal.NewFromInt32(it.Quantity)),
		})
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, orderID, userID string) error {
	row, err := s.getOwned(ctx, orderID, userID)
	if err != nil {
		return err
	}

	if row.Status != StatusPlaced {
		return ErrOrderNotCancellable
	}

	affected, err := s.repo.UpdateStatus(ctx, row.ID, StatusCancelled)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	s.logger.Info("order cancelled",
		zap.String("order_id", row.ID.String()),
		zap.String("user_id", userID),
	)
	return nil
}

func (s *service) Complete(ctx context.Context, orderID string) error {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return ErrInvalidOrderID
	}

	row, err := s.repo.GetByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if row.Status != StatusPlaced {
		return ErrOrderNotCompletable
	}

	affected, err := s.repo.UpdateStatus(ctx, row.ID, StatusCompleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	s.logger.Info("order completed",
		zap.String("order_id", row.ID.String()),
		zap.String("order_number", row.OrderNumber),
	)
	return nil
}

func (s *service) getOwned(ctx context.Context, orderID, userID string) (OrderRow, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return OrderRow{}, ErrInvalidOrderID
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderRow{}, autherrors.ErrInvalidUserID
	}

	row, err := s.repo.GetByID(ctx, oid)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderRow{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderRow{}, err
	}
	if row.UserID != uid {
		return OrderRow{}, ErrOrderNotFound
	}
	return row, nil
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("SE-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

func toResponse(row OrderRow) OrderResponse {
	return OrderResponse{
		ID:          row.ID.String(),
		OrderNumber: row.OrderNumber,
		Status:      row.Status,
		StoreID:     row.StoreID.String(),
		AddressID:   row.AddressID.String(),
		DistanceKm:  row.DistanceKm,
		Subtotal:    row.Subtotal,
		ServiceFee:  row.ServiceFee,
		DeliveryFee: row.DeliveryFee,
		Total:       row.Total,
		Note:        row.Note.String,
		PlacedAt:    row.PlacedAt,
	}
}
