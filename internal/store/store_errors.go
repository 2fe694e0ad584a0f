package store

import (
	"net/http"

	"go-swifteats-api/internal/pkg/apperror"
)

var (
	ErrInvalidStoreID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid store ID",
		http.StatusBadRequest,
	)

	ErrStoreNotFound = apperror.New(
		apperror.CodeNotFound,
		"Store not found",
		http.StatusNotFound,
	)
)
