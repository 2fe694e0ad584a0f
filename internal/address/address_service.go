package address

import (
	"context"
	"database/sql"
	"errors"

	autherrors "go-swifteats-api/internal/auth/errors"
	"go-swifteats-api/internal/geo"
	"go-swifteats-api/internal/zone"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock

type Service interface {
	List(ctx context.Context, userID string) ([]AddressResponse, error)
	Get(ctx context.Context, addressID, userID string) (AddressResponse, error)
	Create(ctx context.Context, userID string, req CreateAddressRequest) (AddressResponse, error)
	Update(ctx context.Context, addressID, userID string, req UpdateAddressRequest) (AddressResponse, error)
	Delete(ctx context.Context, addressID, userID string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(r Repository) Service {
	return &service{
		repo:     r,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context, userID string) ([]AddressResponse, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	addresses := make([]AddressResponse, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, toResponse(row))
	}
	return addresses, nil
}

func (s *service) Get(ctx context.Context, addressID, userID string) (AddressResponse, error) {
	row, err := s.getOwned(ctx, addressID, userID)
	if err != nil {
		return AddressResponse{}, err
	}
	return toResponse(row), nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, ErrInvalidCoordinates
	}

	uid, err := parseUserID(userID)
	if err != nil {
		return AddressResponse{}, err
	}

	// The gate is advisory: an out-of-area address is stored but flagged,
	// so checkout can refuse it with the zone message later.
	verdict := zone.Locate(geo.Point{Lat: req.Latitude, Lon: req.Longitude})

	row := AddressRow{
		ID:          uuid.New(),
		UserID:      uid,
		Label:       req.Label,
		AddressText: req.AddressText,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Serviceable: verdict.Allowed,
	}
	if verdict.Allowed {
		row.Zone = sql.NullString{String: verdict.Zone, Valid: true}
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return AddressResponse{}, err
	}

	res := toResponse(row)
	res.Message = verdict.Message
	return res, nil
}

func (s *service) Update(ctx context.Context, addressID, userID string, req UpdateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, ErrInvalidCoordinates
	}

	row, err := s.getOwned(ctx, addressID, userID)
	if err != nil {
		return AddressResponse{}, err
	}

	verdict := zone.Locate(geo.Point{Lat: req.Latitude, Lon: req.Longitude})

	row.Label = req.Label
	row.AddressText = req.AddressText
	row.Latitude = req.Latitude
	row.Longitude = req.Longitude
	row.Serviceable = verdict.Allowed
	row.Zone = sql.NullString{}
	if verdict.Allowed {
		row.Zone = sql.NullString{String: verdict.Zone, Valid: true}
	}

	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return AddressResponse{}, err
	}
	if affected == 0 {
		return AddressResponse{}, ErrAddressNotFound
	}

	res := toResponse(row)
	res.Message = verdict.Message
	return res, nil
}

func (s *service) Delete(ctx context.Context, addressID, userID string) error {
	aid, err := parseAddressID(addressID)
	if err != nil {
		return err
	}
	uid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, aid, uid)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// getOwned fetches an address and enforces ownership.
func (s *service) getOwned(ctx context.Context, addressID, userID string) (AddressRow, error) {
	aid, err := parseAddressID(addressID)
	if err != nil {
		return AddressRow{}, err
	}
	uid, err := parseUserID(userID)
	if err != nil {
		return AddressRow{}, err
	}

	row, err := s.repo.GetByID(ctx, aid)
	if errors.Is(err, sql.ErrNoRows) {
		return AddressRow{}, ErrAddressNotFound
	}
	if err != nil {
		return AddressRow{}, err
	}
	if row.UserID != uid {
		return AddressRow{}, ErrAddressNotFound
	}
	return row, nil
}

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, autherrors.ErrInvalidUserID
	}
	return id, nil
}

func parseAddressID(addressID string) (uuid.UUID, error) {
	id, err := uuid.Parse(addressID)
	if err != nil {
		return uuid.Nil, ErrInvalidAddressID
	}
	return id, nil
}

func toResponse(row AddressRow) AddressResponse {
	return AddressResponse{
		ID:          row.ID.String(),
		Label:       row.Label,
		AddressText: row.AddressText,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Zone:        row.Zone.String,
		Serviceable: row.Serviceable,
	}
}
