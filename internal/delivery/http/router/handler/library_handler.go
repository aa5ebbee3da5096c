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

// LibraryHandlerParams holds dependencies for LibraryHandler, injected by Fx.
type LibraryHandlerParams struct {
	fx.In

	LibraryUC usecase.LibraryUsecase
	Logger    *slog.Logger
}

// LibraryHandler holds dependencies for library-related handlers
type LibraryHandler struct {
	libraryUC usecase.LibraryUsecase
	logger    *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler
func NewLibraryHandler(params LibraryHandlerParams) *LibraryHandler {
	return &LibraryHandler{
		libraryUC: params.LibraryUC,
		logger:    params.Logger,
	}
}

// WishlistRequest represents the request body for adding a game to the wishlist
type WishlistRequest struct {
	GameID int64 `json:"game_id" validate:"required,gt=0"`
}

// ListLibrary handles retrieving a user's library
func (h *LibraryHandler) ListLibrary(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	entries, err := h.libraryUC.ListLibrary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Library retrieved successfully")
}

// AddToWishlist handles adding a game to a user's wishlist
func (h *LibraryHandler) AddToWishlist(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.libraryUC.AddToWishlist(c.Request().Context(), userID, req.GameID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Game added to wishlist successfully")
}

// RemoveFromWishlist handles removing a wishlisted entry
func (h *LibraryHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	entryID, err := strconv.ParseInt(c.Param("entryId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid library entry ID")
	}

	if err := h.libraryUC.RemoveFromWishlist(c.Request().Context(), userID, entryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Removed from wishlist"}, "Entry removed successfully")
}

// GetStatus handles retrieving a user's relationship to a game
func (h *LibraryHandler) GetStatus(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	gameID, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid game ID")
	}

	status, err := h.libraryUC.StatusOf(c.Request().Context(), userID, gameID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": string(status)}, "Status retrieved successfully")
}

func parseUserID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("userId"), 10, 64)
}
