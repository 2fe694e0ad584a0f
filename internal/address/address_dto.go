package address

// ==================== REQUEST STRUCTS ====================

type CreateAddressRequest struct {
	Label       string  `json:"label" validate:"required"`
	AddressText string  `json:"addressText" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

type UpdateAddressRequest struct {
	Label       string  `json:"label" validate:"required"`
	AddressText string  `json:"addressText" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// ==================== RESPONSE STRUCTS ====================

type AddressResponse struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	AddressText string  `json:"addressText"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	// Zone is the service zone the coordinate fell into, empty when the
	// address is outside the delivery area.
	Zone        string `json:"zone,omitempty"`
	Serviceable bool   `json:"serviceable"`
	// Message explains a non-serviceable address to the user.
	Message string `json:"message,omitempty"`
}
