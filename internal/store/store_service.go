package store

import (
	"context"
	"database/sql"
	"errors"

	"go-swifteats-api/internal/geo"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store_service.go -destination=../mock/store/store_service_mock.go -package=mock

type Service interface {
	List(ctx context.Context) ([]StoreResponse, error)
	Detail(ctx context.Context, storeID string) (StoreResponse, error)

	// Location supplies the pickup coordinate for delivery pricing.
	Location(ctx context.Context, storeID string) (geo.Point, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) parseStoreID(storeID string) (uuid.UUID, error) {
	id, err := uuid.Parse(storeID)
	if err != nil {
		return uuid.Nil, ErrInvalidStoreID
	}
	return id, nil
}

func (s *service) List(ctx context.Context) ([]StoreResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stores := make([]StoreResponse, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, toResponse(row))
	}
	return stores, nil
}

func (s *service) Detail(ctx context.Context, storeID string) (StoreResponse, error) {
	row, err := s.get(ctx, storeID)
	if err != nil {
		return StoreResponse{}, err
	}
	return toResponse(row), nil
}

func (s *service) Location(ctx context.Context, storeID string) (geo.Point, error) {
	row, err := s.get(ctx, storeID)
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: row.Latitude, Lon: row.Longitude}, nil
}

func (s *service) get(ctx context.Context, storeID string) (StoreRow, error) {
	id, err := s.parseStoreID(storeID)
	if err != nil {
		return StoreRow{}, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return StoreRow{}, ErrStoreNotFound
	}
	if err != nil {
		return StoreRow{}, err
	}
	return row, nil
}

func toResponse(row StoreRow) StoreResponse {
	return StoreResponse{
		ID:       row.ID.String(),
		Name:     row.Name,
		ImageURL: row.ImageURL.String,
		Location: geo.Point{Lat: row.Latitude, Lon: row.Longitude},
		Zone:     row.Zone.String,
	}
}
