package rest

import (
	"context"
	"errors"
	"myPotionMaker/business/brewing"
	"myPotionMaker/domain"
	"myPotionMaker/pkg/logger"
	"myPotionMaker/pkg/metrics"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	BrewService interface {
		Brew(ctx context.Context, req domain.BrewRequest) (domain.BrewOutcome, error)
		BrewRecipe(ctx context.Context, code string) (domain.BrewOutcome, error)
		DefaultRareMult() float64
	}

	BrewHandler struct {
		brewService BrewService
		validator   *validator.Validate
		timeout     time.Duration
	}

	// BrewPotionRequest takes exactly four selectors, each an ingredient id or display name.
	BrewPotionRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,len=4"`
		RareMult    *float64 `json:"rare_mult"`
	}

	BrewRecipeRequest struct {
		Code string `json:"code" validate:"required"`
	}
)

func NewBrewHandler(svc BrewService) *BrewHandler {
	return &BrewHandler{
		brewService: svc,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

// POST /api/v1/brews
func (h *BrewHandler) Brew(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.BrewRequestLatency)
	defer timer.ObserveDuration()
	metrics.BrewRequests.Inc()

	var req BrewPotionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind brew request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	brewReq := domain.BrewRequest{RareMult: h.brewService.DefaultRareMult()}
	copy(brewReq.Selections[:], req.Ingredients)
	if req.RareMult != nil {
		brewReq.RareMult = *req.RareMult
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outcome, err := h.brewService.Brew(ctx, brewReq)
	if err != nil {
		return brewError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outcome))
}

// POST /api/v1/brews/recipe
func (h *BrewHandler) BrewRecipe(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.BrewRequestLatency)
	defer timer.ObserveDuration()
	metrics.BrewRequests.Inc()

	var req BrewRecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outcome, err := h.brewService.BrewRecipe(ctx, req.Code)
	if err != nil {
		return brewError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outcome))
}

func brewError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, brewing.ErrInvalidRecipeCode):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	case errors.Is(err, brewing.ErrNegativeScore):
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	case errors.Is(err, brewing.ErrNoCatalog):
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	default:
		logger.Error("Failed to brew potion", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
