package store_test

import (
	"context"
	"database/sql"
	"testing"

	mock "go-swifteats-api/internal/mock/store"
	"go-swifteats-api/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStoreService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := store.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := []store.StoreRow{
			{ID: uuid.New(), Name: "Oasis Cafe", Latitude: 6.8078, Longitude: -58.1620,
				Zone: sql.NullString{String: "Georgetown", Valid: true}, IsActive: true},
			{ID: uuid.New(), Name: "Shanta's Roti Shop", Latitude: 6.8131, Longitude: -58.1555,
				Zone: sql.NullString{String: "Georgetown", Valid: true}, IsActive: true},
		}

		repo.EXPECT().List(ctx).Return(rows, nil)

		stores, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, stores, 2)
		assert.Equal(t, "Oasis Cafe", stores[0].Name)
		assert.Equal(t, "Georgetown", stores[0].Zone)
	})

	t.Run("empty", func(t *testing.T) {
		repo.EXPECT().List(ctx).Return(nil, nil)

		stores, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Empty(t, stores)
	})
}

func TestStoreService_Location(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := store.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		storeID := uuid.New()

		repo.EXPECT().GetByID(ctx, storeID).
			Return(store.StoreRow{ID: storeID, Name: "German's Restaurant", Latitude: 6.8165, Longitude: -58.1602}, nil)

		loc, err := svc.Location(ctx, storeID.String())

		assert.NoError(t, err)
		assert.Equal(t, 6.8165, loc.Lat)
		assert.Equal(t, -58.1602, loc.Lon)
	})

	t.Run("error_not_found", func(t *testing.T) {
		storeID := uuid.New()

		repo.EXPECT().GetByID(ctx, storeID).Return(store.StoreRow{}, sql.ErrNoRows)

		_, err := svc.Location(ctx, storeID.String())
		assert.ErrorIs(t, err, store.ErrStoreNotFound)
	})

	t.Run("error_invalid_store_id", func(t *testing.T) {
		_, err := svc.Location(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, store.ErrInvalidStoreID)
	})
}
