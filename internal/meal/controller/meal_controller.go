package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"messhall/internal/dto"
	apperrors "messhall/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GetMealUseCase interface {
	Execute(ctx context.Context, mealID int) (*dto.MealView, error)
}

type UpdateMealUseCase interface {
	Execute(ctx context.Context, mealID int, req dto.UpdateMealRequest) (*dto.MealView, error)
}

type MealController struct {
	getUC    GetMealUseCase
	updateUC UpdateMealUseCase
	logger   *zap.Logger
}

func NewMealController(getUC GetMealUseCase, updateUC UpdateMealUseCase, logger *zap.Logger) *MealController {
	return &MealController{getUC: getUC, updateUC: updateUC, logger: logger}
}

func (c *MealController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	mealID, ok := c.mealIDParam(w, r, logger)
	if !ok {
		return
	}

	meal, err := c.getUC.Execute(r.Context(), mealID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{"meal": meal})
}

func (c *MealController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	mealID, ok := c.mealIDParam(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	meal, err := c.updateUC.Execute(r.Context(), mealID, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{"meal": meal})
}

func (c *MealController) mealIDParam(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	idStr := chi.URLParam(r, "mealId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		logger.Warn("invalid mealId in path", zap.String("mealId", idStr))
		c.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "VALIDATION_ERROR",
			"message": "mealId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *MealController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *MealController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
