package cart_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	autherrors "go-swifteats-api/internal/auth/errors"
	"go-swifteats-api/internal/cart"
	carterrors "go-swifteats-api/internal/cart/errors"
	mock "go-swifteats-api/internal/mock/cart"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("success_new_cart", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		productID := uuid.NewString()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, sql.ErrNoRows)
		repo.EXPECT().CreateCart(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(nil, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).Return(nil)
		repo.EXPECT().SetStore(ctx, cartID, storeID).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		res, err := svc.AddItem(ctx, userID.String(), cart.AddItemRequest{
			ProductID: productID,
			Name:      "Chicken Curry with Roti",
			UnitPrice: decimal.NewFromInt(1500),
			StoreID:   storeID,
		})

		assert.NoError(t, err)
		assert.Equal(t, cart.OutcomeAdded, res.Outcome)
		assert.Equal(t, productID, res.LineID)
		assert.False(t, res.Replaced)
		assert.Equal(t, 1, res.ItemCount)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("success_increment_existing_line", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		productID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: storeID, Valid: true}}
		existing := []cart.ItemRow{{
			LineID:    productID,
			Name:      "Pine Tart",
			UnitPrice: decimal.NewFromInt(300),
			Quantity:  1,
		}}

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(existing, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, item cart.ItemRow) error {
				assert.Equal(t, int32(2), item.Quantity)
				return nil
			})
		repo.EXPECT().SetStore(ctx, cartID, storeID).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		res, err := svc.AddItem(ctx, userID.String(), cart.AddItemRequest{
			ProductID: productID,
			Name:      "Pine Tart",
			UnitPrice: decimal.NewFromInt(300),
			StoreID:   storeID,
		})

		assert.NoError(t, err)
		assert.Equal(t, cart.OutcomeIncremented, res.Outcome)
		assert.Equal(t, 1, res.ItemCount)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("different_store_replaces_cart", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		oldStore := uuid.NewString()
		newStore := uuid.NewString()
		productID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: oldStore, Valid: true}}
		existing := []cart.ItemRow{{
			LineID:    uuid.NewString(),
			Name:      "Cook-up Rice",
			UnitPrice: decimal.NewFromInt(1200),
			Quantity:  2,
		}}

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(existing, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).Return(nil)
		repo.EXPECT().SetStore(ctx, cartID, newStore).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		res, err := svc.AddItem(ctx, userID.String(), cart.AddItemRequest{
			ProductID: productID,
			Name:      "Bake and Saltfish",
			UnitPrice: decimal.NewFromInt(900),
			StoreID:   newStore,
		})

		assert.NoError(t, err)
		assert.Equal(t, cart.OutcomeReplacedStore, res.Outcome)
		assert.True(t, res.Replaced)
		assert.Equal(t, 1, res.ItemCount)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("option_makes_distinct_line", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		productID := uuid.NewString()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(nil, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).Return(nil)
		repo.EXPECT().SetStore(ctx, cartID, storeID).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		res, err := svc.AddItem(ctx, userID.String(), cart.AddItemRequest{
			ProductID: productID,
			Option:    "Extra Pepper",
			Name:      "Chicken Curry with Roti",
			UnitPrice: decimal.NewFromInt(1500),
			StoreID:   storeID,
		})

		assert.NoError(t, err)
		assert.Equal(t, productID+"-extra-pepper", res.LineID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("error_missing_fields", func(t *testing.T) {
		_, err := svc.AddItem(ctx, uuid.NewString(), cart.AddItemRequest{
			Name: "No product id",
		})
		assert.Error(t, err)
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		_, err := svc.AddItem(ctx, "not-a-uuid", cart.AddItemRequest{
			ProductID: uuid.NewString(),
			Name:      "Mauby (large)",
			StoreID:   uuid.NewString(),
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("repo_error_should_rollback", func(t *testing.T) {
		userID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, errors.New("db error"))

		_, err := svc.AddItem(ctx, userID.String(), cart.AddItemRequest{
			ProductID: uuid.NewString(),
			Name:      "Pepperpot with Plait Bread",
			UnitPrice: decimal.NewFromInt(1800),
			StoreID:   uuid.NewString(),
		})

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_UpdateQty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("success_set_quantity", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		lineID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: storeID, Valid: true}}
		existing := []cart.ItemRow{{LineID: lineID, Name: "Cook-up Rice", UnitPrice: decimal.NewFromInt(1200), Quantity: 1}}

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(existing, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, item cart.ItemRow) error {
				assert.Equal(t, int32(5), item.Quantity)
				return nil
			})
		repo.EXPECT().SetStore(ctx, cartID, storeID).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		err := svc.UpdateQty(ctx, userID.String(), lineID, cart.UpdateQtyRequest{Qty: 5})

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("zero_quantity_removes_line", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		lineID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: storeID, Valid: true}}
		existing := []cart.ItemRow{{LineID: lineID, Name: "Pine Tart", UnitPrice: decimal.NewFromInt(300), Quantity: 2}}

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(existing, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		// last line removed, store association is dropped too
		repo.EXPECT().SetStore(ctx, cartID, "").Return(nil)
		reminders.EXPECT().Cancel(ctx, userID.String()).Return(nil)

		err := svc.UpdateQty(ctx, userID.String(), lineID, cart.UpdateQtyRequest{Qty: 0})

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("error_line_not_found", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(nil, nil)

		err := svc.UpdateQty(ctx, userID.String(), uuid.NewString(), cart.UpdateQtyRequest{Qty: 3})

		assert.ErrorIs(t, err, carterrors.ErrCartItemNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("error_cart_not_found", func(t *testing.T) {
		userID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, sql.ErrNoRows)

		err := svc.UpdateQty(ctx, userID.String(), uuid.NewString(), cart.UpdateQtyRequest{Qty: 1})

		assert.ErrorIs(t, err, carterrors.ErrCartNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("success_keeps_other_lines", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()
		lineID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: storeID, Valid: true}}
		existing := []cart.ItemRow{
			{LineID: lineID, Name: "Mauby (large)", UnitPrice: decimal.NewFromInt(400), Quantity: 1},
			{LineID: uuid.NewString(), Name: "Cook-up Rice", UnitPrice: decimal.NewFromInt(1200), Quantity: 1},
		}

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(existing, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().InsertItem(ctx, cartID, gomock.Any()).Return(nil)
		repo.EXPECT().SetStore(ctx, cartID, storeID).Return(nil)
		reminders.EXPECT().Schedule(ctx, userID.String(), int64(1)).Return(nil)

		err := svc.DeleteItem(ctx, userID.String(), lineID)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("error_line_not_found", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(nil, nil)

		err := svc.DeleteItem(ctx, userID.String(), uuid.NewString())

		assert.ErrorIs(t, err, carterrors.ErrCartItemNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestCartService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("no_cart_reads_as_empty", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, sql.ErrNoRows)

		res, err := svc.Detail(ctx, userID.String())

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Empty(t, res.StoreID)
		assert.True(t, res.Subtotal.IsZero())
	})

	t.Run("success_with_subtotal", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		storeID := uuid.NewString()

		row := cart.CartRow{ID: cartID, UserID: userID, StoreID: sql.NullString{String: storeID, Valid: true}}
		items := []cart.ItemRow{
			{LineID: uuid.NewString(), Name: "Bake and Saltfish", UnitPrice: decimal.NewFromInt(500), Quantity: 2},
			{LineID: uuid.NewString(), Name: "Cook-up Rice", UnitPrice: decimal.NewFromInt(1200), Quantity: 1},
		}

		repo.EXPECT().GetByUserID(ctx, userID).Return(row, nil)
		repo.EXPECT().ListItems(ctx, cartID).Return(items, nil)

		res, err := svc.Detail(ctx, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, storeID, res.StoreID)
		assert.Len(t, res.Items, 2)
		assert.True(t, res.Subtotal.Equal(decimal.NewFromInt(2200)))
		assert.True(t, res.Items[0].Subtotal.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		_, err := svc.Detail(ctx, "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}

func TestCartService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()

		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().CountItems(ctx, cartID).Return(int64(3), nil)

		count, err := svc.Count(ctx, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("no_cart_counts_zero", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, sql.ErrNoRows)

		count, err := svc.Count(ctx, userID.String())

		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	svc := cart.NewService(db, repo, reminders)
	ctx := context.Background()

	t.Run("success_cancels_reminder", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{ID: cartID, UserID: userID}, nil)
		repo.EXPECT().DeleteAllItems(ctx, cartID).Return(nil)
		repo.EXPECT().SetStore(ctx, cartID, "").Return(nil)
		reminders.EXPECT().Cancel(ctx, userID.String()).Return(nil)

		err := svc.Clear(ctx, userID.String())

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("no_cart_is_a_noop", func(t *testing.T) {
		userID := uuid.New()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().GetByUserID(ctx, userID).Return(cart.CartRow{}, sql.ErrNoRows)
		reminders.EXPECT().Cancel(ctx, userID.String()).Return(nil)

		err := svc.Clear(ctx, userID.String())

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
