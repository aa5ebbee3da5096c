package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gamehub/internal/delivery/http/response"
	"gamehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler holds dependencies for discount management handlers
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// CreateDiscountRequest represents the request body for creating a discount
type CreateDiscountRequest struct {
	Name      string  `json:"name" validate:"required"`
	Percent   string  `json:"percent" validate:"required"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	GameIDs   []int64 `json:"game_ids,omitempty"`
}

// CreateDiscount handles creating a named discount campaign
func (h *DiscountHandler) CreateDiscount(c echo.Context) error {
	var req CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	percent, err := decimal.NewFromString(req.Percent)
	if err != nil {
		return response.BadRequest(c, "INVALID_PERCENT", "Invalid discount percent")
	}

	input := usecase.CreateDiscountInput{
		Name:    req.Name,
		Percent: percent,
		GameIDs: req.GameIDs,
	}

	if req.StartDate != nil {
		start, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Invalid start_date, expected RFC 3339")
		}
		input.StartDate = &start
	}

	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Invalid end_date, expected RFC 3339")
		}
		input.EndDate = &end
	}

	discount, err := h.discountUC.CreateDiscount(c.Request().Context(), input)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "create discount failed",
			slog.String("name", req.Name),
			slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount created successfully")
}

// GetDiscount handles retrieving a single discount by ID
func (h *DiscountHandler) GetDiscount(c echo.Context) error {
	discountID, err := strconv.ParseInt(c.Param("discountId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	discount, err := h.discountUC.GetDiscount(c.Request().Context(), discountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount, "Discount retrieved successfully")
}

// ListDiscounts handles listing all discount campaigns
func (h *DiscountHandler) ListDiscounts(c echo.Context) error {
	discounts, err := h.discountUC.ListDiscounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discounts, "Discounts retrieved successfully")
}
