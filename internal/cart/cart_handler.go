package cart

import (
	"net/http"

	"go-swifteats-api/internal/pkg/apperror"
	"go-swifteats-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.AddItem(ctx.Request.Context(), userID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	lineID := ctx.Param("lineId")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx.Request.Context(), userID, lineID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, nil)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	lineID := ctx.Param("lineId")

	if err := h.service.DeleteItem(ctx.Request.Context(), userID, lineID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, nil)
}

func (h *Handler) Detail(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Detail(ctx.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Count(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	count, err := h.service.Count(ctx.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, CartCountResponse{Count: count}, nil)
}

func (h *Handler) Clear(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	if err := h.service.Clear(ctx.Request.Context(), userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, nil)
}
