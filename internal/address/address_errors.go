package address

import (
	"net/http"

	"go-swifteats-api/internal/pkg/apperror"
)

var (
	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address ID",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"Coordinates out of range",
		http.StatusBadRequest,
	)
)
