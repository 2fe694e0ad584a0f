package store

import "go-swifteats-api/internal/geo"

type StoreResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Location geo.Point `json:"location"`
	Zone     string    `json:"zone,omitempty"`
}
