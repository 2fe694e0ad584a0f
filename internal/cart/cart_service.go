package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	autherrors "go-swifteats-api/internal/auth/errors"
	carterrors "go-swifteats-api/internal/cart/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock

// ReminderScheduler is the abandoned-cart reminder collaborator. The cart
// only signals state transitions; scheduling policy and delivery live
// elsewhere.
type ReminderScheduler interface {
	Schedule(ctx context.Context, userID string, itemCount int64) error
	Cancel(ctx context.Context, userID string) error
}

type Service interface {
	AddItem(ctx context.Context, userID string, req AddItemRequest) (AddItemResponse, error)
	UpdateQty(ctx context.Context, userID, lineID string, req UpdateQtyRequest) error
	DeleteItem(ctx context.Context, userID, lineID string) error

	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	Count(ctx context.Context, userID string) (int64, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	reminders ReminderScheduler
	validate  *validator.Validate
}

func NewService(db *sql.DB, r Repository, reminders ReminderScheduler) Service {
	return &service{
		db:        db,
		repo:      r,
		reminders: reminders,
		validate:  validator.New(),
	}
}

// ========================
// helpers
// ========================

func (s *service) parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

func getOrCreateCart(ctx context.Context, repo Repository, uid uuid.UUID) (CartRow, error) {
	row, err := repo.GetByUserID(ctx, uid)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CartRow{}, err
	}
	return repo.CreateCart(ctx, uid)
}

// loadCart rebuilds the domain cart from its persisted rows.
func loadCart(ctx context.Context, repo Repository, row CartRow) (Cart, error) {
	items, err := repo.ListItems(ctx, row.ID)
	if err != nil {
		return Cart{}, err
	}

	c := Cart{StoreID: row.StoreID.String}
	for _, it := range items {
		c.Lines = append(c.Lines, Line{
			ID:        it.LineID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			ImageURL:  it.ImageURL.String,
			Quantity:  it.Quantity,
			StoreID:   row.StoreID.String,
		})
	}
	return c, nil
}

// saveCart rewrites the persisted rows from the domain cart. Carts are a
// handful of lines, so replace-all keeps the rules in one place instead of
// mirroring them in SQL.
func saveCart(ctx context.Context, repo Repository, cartID uuid.UUID, c Cart) error {
	if err := repo.DeleteAllItems(ctx, cartID); err != nil {
		return err
	}
	for _, l := range c.Lines {
		item := ItemRow{
			LineID:    l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
		if l.ImageURL != "" {
			item.ImageURL = sql.NullString{String: l.ImageURL, Valid: true}
		}
		if err := repo.InsertItem(ctx, cartID, item); err != nil {
			return err
		}
	}
	return repo.SetStore(ctx, cartID, c.StoreID)
}

// signalReminder keeps the abandoned-cart reminder in step with the cart.
// Failures are logged, never surfaced: reminders are best-effort.
func (s *service) signalReminder(ctx context.Context, userID string, itemCount int) {
	if s.reminders == nil {
		return
	}

	var err error
	if itemCount > 0 {
		err = s.reminders.Schedule(ctx, userID, int64(itemCount))
	} else {
		err = s.reminders.Cancel(ctx, userID)
	}
	if err != nil {
		log.Printf("[CART] reminder signal failed for user %s: %v", userID, err)
	}
}

// ========================
// operations
// ========================

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) (AddItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddItemResponse{}, carterrors.MapValidationError(err)
	}

	uid, err := s.parseUserID(userID)
	if err != nil {
		return AddItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AddItemResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	row, err := getOrCreateCart(ctx, repo, uid)
	if err != nil {
		return AddItemResponse{}, err
	}

	c, err := loadCart(ctx, repo, row)
	if err != nil {
		return AddItemResponse{}, err
	}

	name := req.Name
	if req.Option != "" {
		name = fmt.Sprintf("%s (%s)", req.Name, req.Option)
	}

	lineID := LineID(req.ProductID, req.Option)
	outcome, err := c.Add(Item{
		ID:        lineID,
		Name:      name,
		UnitPrice: req.UnitPrice,
		ImageURL:  req.ImageURL,
		StoreID:   req.StoreID,
	})
	if err != nil {
		return AddItemResponse{}, carterrors.ErrInvalidItem
	}

	if err := saveCart(ctx, repo, row.ID, c); err != nil {
		return AddItemResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AddItemResponse{}, err
	}

	s.signalReminder(ctx, userID, c.Count())

	return AddItemResponse{
		LineID:    lineID,
		Outcome:   outcome,
		Replaced:  outcome == OutcomeReplacedStore,
		ItemCount: c.Count(),
	}, nil
}

func (s *service) UpdateQty(ctx context.Context, userID, lineID string, req UpdateQtyRequest) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	row, err := repo.GetByUserID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return carterrors.ErrCartNotFound
	}
	if err != nil {
		return err
	}

	c, err := loadCart(ctx, repo, row)
	if err != nil {
		return err
	}

	if !hasLine(c, lineID) {
		return carterrors.ErrCartItemNotFound
	}

	c.SetQuantity(lineID, req.Qty)

	if err := saveCart(ctx, repo, row.ID, c); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.signalReminder(ctx, userID, c.Count())
	return nil
}

func (s *service) DeleteItem(ctx context.Context, userID, lineID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	row, err := repo.GetByUserID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return carterrors.ErrCartNotFound
	}
	if err != nil {
		return err
	}

	c, err := loadCart(ctx, repo, row)
	if err != nil {
		return err
	}

	if !hasLine(c, lineID) {
		return carterrors.ErrCartItemNotFound
	}

	c.Remove(lineID)

	if err := saveCart(ctx, repo, row.ID, c); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.signalReminder(ctx, userID, c.Count())
	return nil
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	row, err := s.repo.GetByUserID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		// No cart yet reads as an empty cart.
		return emptyDetail(), nil
	}
	if err != nil {
		return CartDetailResponse{}, err
	}

	c, err := loadCart(ctx, s.repo, row)
	if err != nil {
		return CartDetailResponse{}, err
	}

	return toDetailResponse(c), nil
}

func (s *service) Count(ctx context.Context, userID string) (int64, error) {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return 0, err
	}

	row, err := s.repo.GetByUserID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return s.repo.CountItems(ctx, row.ID)
}

func (s *service) Clear(ctx context.Context, userID string) error {
	uid, err := s.parseUserID(userID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	row, err := repo.GetByUserID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		// Nothing to clear; still make sure no stale reminder fires.
		s.signalReminder(ctx, userID, 0)
		return nil
	}
	if err != nil {
		return err
	}

	if err := repo.DeleteAllItems(ctx, row.ID); err != nil {
		return err
	}
	if err := repo.SetStore(ctx, row.ID, ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.signalReminder(ctx, userID, 0)
	return nil
}

func hasLine(c Cart, lineID string) bool {
	for _, l := range c.Lines {
		if l.ID == lineID {
			return true
		}
	}
	return false
}

func emptyDetail() CartDetailResponse {
	return CartDetailResponse{
		Items:    []CartLineResponse{},
		Subtotal: decimal.Zero,
	}
}

func toDetailResponse(c Cart) CartDetailResponse {
	items := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, CartLineResponse{
			LineID:    l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return CartDetailResponse{
		StoreID:  c.StoreID,
		Items:    items,
		Subtotal: c.Subtotal(),
	}
}
