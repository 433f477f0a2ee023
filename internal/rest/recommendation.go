package rest

import (
	"context"
	"net/http"
	"time"

	"smartShop/business/recommendation"
	"smartShop/domain"
	"smartShop/pkg/logger"
	"smartShop/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
		timeout     time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, input recommendation.RecommendInput) domain.RecommendationResult
	}

	RecommendRequest struct {
		CartItems      []domain.UserItem      `json:"cart_items"`
		ViewedProducts []domain.ViewedProduct `json:"viewed_products"`
		Page           int                    `json:"page" validate:"gte=0"`
		PageSize       int                    `json:"page_size" validate:"gte=0"`
	}
)

func NewRecommendationHandler(recoService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: recoService,
		timeout:     10 * time.Second,
	}
}

// Recommend ranks the catalog for the caller. The user identity is
// optional: anonymous callers still get cart/view based recommendations
// or explore mode.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var userID uint
	if uid, ok := c.Get("user_id").(uint); ok {
		userID = uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result := h.recoService.Recommend(ctx, recommendation.RecommendInput{
		CartItems:      req.CartItems,
		ViewedProducts: req.ViewedProducts,
		UserID:         userID,
		Page:           req.Page,
		PageSize:       req.PageSize,
	})

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
