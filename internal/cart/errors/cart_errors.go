package carterrors

import (
	"errors"
	"net/http"

	"go-swifteats-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCartNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart not found",
		http.StatusNotFound,
	)

	ErrCartEmpty = apperror.New(
		apperror.CodeConflict,
		"Cart is empty",
		http.StatusConflict,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item",
		http.StatusBadRequest,
	)
)

// MapValidationError normalizes validator failures into the shared
// invalid-input error so handlers never see raw validator internals.
func MapValidationError(err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return ErrInvalidItem
	}
	return err
}
