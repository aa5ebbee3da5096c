package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gamehub/internal/delivery/http/response"
	"gamehub/internal/domain/repository"
	"gamehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListGames handles catalog browsing. The optional user_id query parameter
// annotates each listing with that user's library status.
func (h *CatalogHandler) ListGames(c echo.Context) error {
	filter, err := parseGameFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	var userID int64
	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
	}

	listings, err := h.catalogUC.BrowseGames(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Games retrieved successfully")
}

// GetGame handles retrieving a single game
func (h *CatalogHandler) GetGame(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid game ID")
	}

	game, err := h.catalogUC.GetGame(c.Request().Context(), gameID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, game, "Game retrieved successfully")
}

func parseGameFilter(c echo.Context) (repository.GameFilter, error) {
	filter := repository.GameFilter{
		SearchTerm: c.QueryParam("search"),
	}

	if raw := c.QueryParam("genre_id"); raw != "" {
		genreID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid genre_id")
		}
		filter.GenreID = &genreID
	}

	if raw := c.QueryParam("free"); raw != "" {
		free, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("invalid free flag")
		}
		filter.FreeOnly = free
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("invalid min_price")
		}
		filter.MinPrice = &minPrice
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.New("invalid max_price")
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
