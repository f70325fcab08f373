package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrimatch/internal/errors"
	"agrimatch/internal/service"
)

// SeedHandler exposes the bootstrap seeding endpoint.
type SeedHandler struct {
	farmlandService service.FarmlandService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(farmlandService service.FarmlandService) *SeedHandler {
	return &SeedHandler{farmlandService: farmlandService}
}

// SeedFarmlands godoc
// @Summary Insert the bundled sample listings
// @Description No-op when listings already exist.
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/farmland [get]
func (h *SeedHandler) SeedFarmlands(c echo.Context) error {
	count, err := h.farmlandService.SeedSample(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "seed completed",
		"seeded":  count,
	})
}
