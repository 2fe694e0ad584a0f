package adapters

import (
	"context"

	"go-swifteats-api/internal/address"
	"go-swifteats-api/internal/geo"
	"go-swifteats-api/internal/order"
)

// AddressAdapter projects the address module onto the order module's
// AddressLookup port.
type AddressAdapter struct {
	svc address.Service
}

func NewAddressAdapter(svc address.Service) *AddressAdapter {
	return &AddressAdapter{svc: svc}
}

func (a *AddressAdapter) Get(ctx context.Context, addressID, userID string) (order.AddressInfo, error) {
	res, err := a.svc.Get(ctx, addressID, userID)
	if err != nil {
		return order.AddressInfo{}, err
	}
	return order.AddressInfo{
		Location:    geo.Point{Lat: res.Latitude, Lon: res.Longitude},
		Serviceable: res.Serviceable,
	}, nil
}
