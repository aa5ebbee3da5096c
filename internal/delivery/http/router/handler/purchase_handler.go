// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gamehub/internal/delivery/http/response"
	"gamehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// PurchaseHandler holds dependencies for purchase-related handlers
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// PurchaseRequest represents the request body for purchasing a game
type PurchaseRequest struct {
	UserID        int64  `json:"user_id" validate:"required,gt=0"`
	GameID        int64  `json:"game_id" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method,omitempty"`
	DiscountCode  string `json:"discount_code,omitempty"`
}

// Purchase handles a purchase request
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	receipt, err := h.purchaseUC.Purchase(c.Request().Context(), usecase.PurchaseInput{
		UserID:        req.UserID,
		GameID:        req.GameID,
		PaymentMethod: req.PaymentMethod,
		DiscountCode:  req.DiscountCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Purchase completed",
		slog.Int64("transaction_id", receipt.TransactionID),
		slog.Int64("user_id", receipt.UserID),
		slog.Int64("game_id", receipt.GameID),
	)

	return response.Success(c, http.StatusCreated, receipt, "Purchase completed successfully")
}

// Quote handles a read-only checkout price preview
func (h *PurchaseHandler) Quote(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid game ID")
	}

	quote, err := h.discountUC.Quote(c.Request().Context(), gameID, c.QueryParam("discount_code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote computed successfully")
}
