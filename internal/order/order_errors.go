package order

import (
	"net/http"

	"go-swifteats-api/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrOutsideServiceArea = apperror.New(
		apperror.CodeConflict,
		"Delivery address is outside the service area",
		http.StatusConflict,
	)

	ErrOrderNotCancellable = apperror.New(
		apperror.CodeConflict,
		"Order can no longer be cancelled",
		http.StatusConflict,
	)

	ErrOrderNotCompletable = apperror.New(
		apperror.CodeConflict,
		"Only placed orders can be completed",
		http.StatusConflict,
	)
)
