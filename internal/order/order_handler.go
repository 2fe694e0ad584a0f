package order

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-swifteats-api/internal/pkg/apperror"
	"go-swifteats-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(svc Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, rdb: rdb, logger: l}
}

// GET /orders/quote?storeId=&addressId=
func (h *Handler) Quote(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "storeId and addressId are required", err.Error())
		return
	}

	res, err := h.service.Quote(c.Request.Context(), userID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// POST /orders/checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	h.logger.Debug("http checkout request", zap.String("user_id", userID))

	// Release the idempotency lock regardless of outcome so a failed
	// checkout can be retried with the same key.
	lockKey, _ := c.Get("idempotency_lock_key")
	defer func() {
		if lockKey != nil && h.rdb != nil {
			h.rdb.Del(c.Request.Context(), lockKey.(string))
		}
	}()

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http checkout validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Error("http checkout service error",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if cacheKey, exists := c.Get("idempotency_cache_key"); exists && h.rdb != nil {
		if jsonData, err := json.Marshal(res); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey.(string), jsonData, 24*time.Hour)
		}
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// GET /orders
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders, total, err := h.service.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	response.Success(c, http.StatusOK, orders, &response.Pagination{
		Page:            page,
		PageSize:        limit,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	})
}

// GET /orders/:id
func (h *Handler) Detail(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Detail(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// PATCH /orders/:id/complete (admin)
func (h *Handler) Complete(c *gin.Context) {
	if err := h.service.Complete(c.Request.Context(), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}

// PATCH /orders/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := h.service.Cancel(c.Request.Context(), c.Param("id"), userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}
