package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"messhall/internal/auth"
	"messhall/internal/dto"
	apperrors "messhall/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateOrderUseCase interface {
	Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.MealOrdered, error)
}

type GetOrderUseCase interface {
	Execute(ctx context.Context, orderID uint) (*dto.OrderWithMeal, error)
}

type UpdateOrderStatusUseCase interface {
	Execute(ctx context.Context, orderID uint, req dto.UpdateOrderStatusRequest) (*dto.OrderView, error)
}

type RemoveOrderUseCase interface {
	Execute(ctx context.Context, orderID uint) error
}

type OrderController struct {
	createUC CreateOrderUseCase
	getUC    GetOrderUseCase
	updateUC UpdateOrderStatusUseCase
	removeUC RemoveOrderUseCase
	logger   *zap.Logger
}

func NewOrderController(
	createUC CreateOrderUseCase,
	getUC GetOrderUseCase,
	updateUC UpdateOrderStatusUseCase,
	removeUC RemoveOrderUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		removeUC: removeUC,
		logger:   logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.createUC.Execute(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]any{"order": result})
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDParam(w, r, logger)
	if !ok {
		return
	}

	result, err := c.getUC.Execute(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{"order": result})
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if ident, ok := auth.FromContext(r.Context()); ok {
		logger = logger.With(
			zap.Int("actorCustomerId", ident.CustomerID),
			zap.Bool("actorIsAdmin", ident.IsAdmin),
			zap.Bool("actorIsManager", ident.IsManager),
		)
	}

	orderID, ok := c.orderIDParam(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.updateUC.Execute(r.Context(), orderID, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{"order": result})
}

func (c *OrderController) Remove(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDParam(w, r, logger)
	if !ok {
		return
	}

	if err := c.removeUC.Execute(r.Context(), orderID); err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{"deleted": orderID})
}

func (c *OrderController) orderIDParam(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "orderId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", idStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsBadReferenceError(err); ok {
		c.writeError(w, http.StatusBadRequest, "BAD_REFERENCE", err.Error())
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsIntegrityError(err); ok {
		logger.Error("data integrity violation", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "DATA_INTEGRITY", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
