package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrimatch/internal/errors"
	"agrimatch/internal/service"
)

// FavoriteHandler handles favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteListing is a Listing with the favorite bookkeeping fields attached.
type FavoriteListing struct {
	Listing
	FavoriteID  string    `json:"favoriteId"`
	FavoritedAt time.Time `json:"favoritedAt"`
}

// FavoriteListResponse is the payload of GET /favorites.
type FavoriteListResponse struct {
	Data  []FavoriteListing `json:"data"`
	Total int               `json:"total"`
}

// AddFavoriteRequest represents a favorite creation request.
type AddFavoriteRequest struct {
	FarmlandID string `json:"farmlandId" validate:"required"`
}

// FavoriteStatusResponse reports whether a farmland is favorited.
type FavoriteStatusResponse struct {
	IsFavorite bool   `json:"isFavorite"`
	FavoriteID string `json:"favoriteId,omitempty"`
}

// List godoc
// @Summary List the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FavoriteListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	data := make([]FavoriteListing, 0, len(favorites))
	for _, fav := range favorites {
		data = append(data, FavoriteListing{
			Listing:     toListing(fav.Farmland),
			FavoriteID:  strconv.FormatUint(uint64(fav.ID), 10),
			FavoritedAt: fav.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, FavoriteListResponse{
		Data:  data,
		Total: len(data),
	})
}

// Add godoc
// @Summary Favorite a farmland
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Farmland to favorite"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farmlandID, err := strconv.ParseUint(req.FarmlandID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid farmland ID",
			Code:  "INVALID_ID",
		})
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), userID, uint(farmlandID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":    "added to favorites",
		"favoriteId": strconv.FormatUint(uint64(favorite.ID), 10),
	})
}

// Status godoc
// @Summary Check whether a farmland is favorited
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param farmlandId path string true "Farmland ID"
// @Success 200 {object} FavoriteStatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites/{farmlandId} [get]
func (h *FavoriteHandler) Status(c echo.Context) error {
	userID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	farmlandID, err := strconv.ParseUint(c.Param("farmlandId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid farmland ID",
			Code:  "INVALID_ID",
		})
	}

	isFavorite, favoriteID, err := h.favoriteService.Status(c.Request().Context(), userID, uint(farmlandID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := FavoriteStatusResponse{IsFavorite: isFavorite}
	if isFavorite {
		resp.FavoriteID = strconv.FormatUint(uint64(favoriteID), 10)
	}
	return c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary Remove a farmland from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param farmlandId path string true "Farmland ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites/{farmlandId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	farmlandID, err := strconv.ParseUint(c.Param("farmlandId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid farmland ID",
			Code:  "INVALID_ID",
		})
	}

	if err := h.favoriteService.Remove(c.Request().Context(), userID, uint(farmlandID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "removed from favorites",
	})
}
