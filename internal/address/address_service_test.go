package address_test

import (
	"context"
	"database/sql"
	"testing"

	"go-swifteats-api/internal/address"
	mock "go-swifteats-api/internal/mock/address"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddressService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := address.NewService(repo)
	ctx := context.Background()

	t.Run("success_inside_georgetown", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, row address.AddressRow) error {
				assert.Equal(t, userID, row.UserID)
				assert.True(t, row.Serviceable)
				assert.Equal(t, "Georgetown", row.Zone.String)
				return nil
			})

		res, err := svc.Create(ctx, userID.String(), address.CreateAddressRequest{
			Label:       "Home",
			AddressText: "123 Main St, Georgetown",
			Latitude:    6.8050,
			Longitude:   -58.1500,
		})

		assert.NoError(t, err)
		assert.True(t, res.Serviceable)
		assert.Equal(t, "Georgetown", res.Zone)
		assert.Empty(t, res.Message)
	})

	t.Run("outside_area_stored_but_flagged", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, row address.AddressRow) error {
				assert.False(t, row.Serviceable)
				assert.False(t, row.Zone.Valid)
				return nil
			})

		res, err := svc.Create(ctx, userID.String(), address.CreateAddressRequest{
			Label:       "Work",
			AddressText: "Anna Regina, Essequibo",
			Latitude:    7.2644,
			Longitude:   -58.5075,
		})

		assert.NoError(t, err)
		assert.False(t, res.Serviceable)
		assert.Empty(t, res.Zone)
		assert.Contains(t, res.Message, "Georgetown")
	})

	t.Run("error_coordinates_out_of_range", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.NewString(), address.CreateAddressRequest{
			Label:       "Bad",
			AddressText: "Nowhere",
			Latitude:    91.0,
			Longitude:   -58.15,
		})
		assert.ErrorIs(t, err, address.ErrInvalidCoordinates)
	})

	t.Run("error_missing_label", func(t *testing.T) {
		_, err := svc.Create(ctx, uuid.NewString(), address.CreateAddressRequest{
			AddressText: "No label",
			Latitude:    6.80,
			Longitude:   -58.16,
		})
		assert.Error(t, err)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := address.NewService(repo)
	ctx := context.Background()

	t.Run("success_reclassifies_zone", func(t *testing.T) {
		userID := uuid.New()
		addressID := uuid.New()

		existing := address.AddressRow{
			ID: addressID, UserID: userID,
			Label: "Home", AddressText: "Georgetown",
			Latitude: 6.8050, Longitude: -58.1500,
			Zone: sql.NullString{String: "Georgetown", Valid: true}, Serviceable: true,
		}

		repo.EXPECT().GetByID(ctx, addressID).Return(existing, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, row address.AddressRow) (int64, error) {
				assert.Equal(t, "East Coast Demerara", row.Zone.String)
				assert.True(t, row.Serviceable)
				return 1, nil
			})

		res, err := svc.Update(ctx, addressID.String(), userID.String(), address.UpdateAddressRequest{
			Label:       "Home",
			AddressText: "Beterverwagting, ECD",
			Latitude:    6.8000,
			Longitude:   -58.0500,
		})

		assert.NoError(t, err)
		assert.Equal(t, "East Coast Demerara", res.Zone)
	})

	t.Run("error_not_owned", func(t *testing.T) {
		addressID := uuid.New()

		repo.EXPECT().GetByID(ctx, addressID).
			Return(address.AddressRow{ID: addressID, UserID: uuid.New()}, nil)

		_, err := svc.Update(ctx, addressID.String(), uuid.NewString(), address.UpdateAddressRequest{
			Label:       "Home",
			AddressText: "Somewhere",
			Latitude:    6.80,
			Longitude:   -58.16,
		})

		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}

func TestAddressService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := address.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		addressID := uuid.New()

		repo.EXPECT().GetByID(ctx, addressID).Return(address.AddressRow{
			ID: addressID, UserID: userID, Label: "Home",
			Latitude: 6.8050, Longitude: -58.1500,
			Zone: sql.NullString{String: "Georgetown", Valid: true}, Serviceable: true,
		}, nil)

		res, err := svc.Get(ctx, addressID.String(), userID.String())

		assert.NoError(t, err)
		assert.Equal(t, addressID.String(), res.ID)
		assert.True(t, res.Serviceable)
	})

	t.Run("error_not_found", func(t *testing.T) {
		addressID := uuid.New()

		repo.EXPECT().GetByID(ctx, addressID).Return(address.AddressRow{}, sql.ErrNoRows)

		_, err := svc.Get(ctx, addressID.String(), uuid.NewString())
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})

	t.Run("error_invalid_address_id", func(t *testing.T) {
		_, err := svc.Get(ctx, "nope", uuid.NewString())
		assert.ErrorIs(t, err, address.ErrInvalidAddressID)
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := address.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		addressID := uuid.New()

		repo.EXPECT().Delete(ctx, addressID, userID).Return(int64(1), nil)

		err := svc.Delete(ctx, addressID.String(), userID.String())
		assert.NoError(t, err)
	})

	t.Run("error_nothing_deleted", func(t *testing.T) {
		userID := uuid.New()
		addressID := uuid.New()

		repo.EXPECT().Delete(ctx, addressID, userID).Return(int64(0), nil)

		err := svc.Delete(ctx, addressID.String(), userID.String())
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}
