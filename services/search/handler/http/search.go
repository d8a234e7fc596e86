package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/search"
)

// SearchHandler handles HTTP requests for ride searches
type SearchHandler struct {
	searchUC search.SearchUC
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchUC search.SearchUC) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// SearchTrips handles ride search requests. The caller's identity keys
// the search history.
func (h *SearchHandler) SearchTrips(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var query models.SearchQuery
	if err := c.Bind(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid search payload")
	}

	result, err := h.searchUC.Search(c.Request().Context(), userID.String(), &query)
	if err != nil {
		logger.Warn("Search failed",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Search completed successfully", result)
}

// GetHistory handles search history retrieval requests
func (h *SearchHandler) GetHistory(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	history, err := h.searchUC.GetHistory(c.Request().Context(), userID.String())
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Search history retrieved successfully", history)
}
