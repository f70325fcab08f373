package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"agrimatch/internal/errors"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
	"agrimatch/internal/service"
)

// FarmlandHandler handles listing endpoints.
type FarmlandHandler struct {
	farmlandService service.FarmlandService
}

// NewFarmlandHandler creates a new farmland handler.
func NewFarmlandHandler(farmlandService service.FarmlandService) *FarmlandHandler {
	return &FarmlandHandler{farmlandService: farmlandService}
}

// ProviderSummary is the denormalized owner block inside a Listing.
type ProviderSummary struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// Listing is a Farmland as exposed through the retrieval endpoint.
type Listing struct {
	ID            string           `json:"id"`
	Name          *string          `json:"name"`
	Prefecture    string           `json:"prefecture"`
	City          string           `json:"city"`
	Address       string           `json:"address"`
	Area          float64          `json:"area"`
	Price         *int64           `json:"price"`
	Description   *string          `json:"description"`
	Latitude      *float64         `json:"latitude"`
	Longitude     *float64         `json:"longitude"`
	AvailableFrom time.Time        `json:"availableFrom"`
	AvailableTo   *time.Time       `json:"availableTo"`
	Images        []string         `json:"images"`
	Facilities    model.Facilities `json:"facilities"`
	Status        string           `json:"status"`
	Provider      ProviderSummary  `json:"provider"`
}

// Pagination is the paging metadata of a search response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// SearchResponse is the payload of GET /farmland.
type SearchResponse struct {
	Data       []Listing  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func toListing(f model.Farmland) Listing {
	images := f.Images
	if images == nil {
		images = []string{}
	}
	return Listing{
		ID:            strconv.FormatUint(uint64(f.ID), 10),
		Name:          f.Name,
		Prefecture:    f.Prefecture,
		City:          f.City,
		Address:       f.Address,
		Area:          f.Area,
		Price:         f.Price,
		Description:   f.Description,
		Latitude:      f.Latitude,
		Longitude:     f.Longitude,
		AvailableFrom: f.AvailableFrom,
		AvailableTo:   f.AvailableTo,
		Images:        images,
		Facilities:    f.Facilities,
		Status:        string(f.Status),
		Provider: ProviderSummary{
			ID:    strconv.FormatUint(uint64(f.Provider.ID), 10),
			Name:  f.Provider.Name,
			Email: f.Provider.Email,
		},
	}
}

// parseSearchQuery translates query parameters into a filter plus pagination.
// Malformed numerics are rejected rather than silently coerced.
func parseSearchQuery(values url.Values) (repository.SearchFilter, int, int, error) {
	filter := repository.SearchFilter{
		Prefecture: values.Get("prefecture"),
		City:       values.Get("city"),
		Keyword:    values.Get("keyword"),
	}

	var err error
	if filter.MinArea, err = parseFloatParam(values, "minArea"); err != nil {
		return filter, 0, 0, err
	}
	if filter.MaxArea, err = parseFloatParam(values, "maxArea"); err != nil {
		return filter, 0, 0, err
	}
	if filter.MinPrice, err = parseIntParam(values, "minPrice"); err != nil {
		return filter, 0, 0, err
	}
	if filter.MaxPrice, err = parseIntParam(values, "maxPrice"); err != nil {
		return filter, 0, 0, err
	}

	if raw := values.Get("facilities"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				filter.Facilities = append(filter.Facilities, key)
			}
		}
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("%w: page", errors.ErrInvalidFilter)
		}
	}
	limit := 10
	if raw := values.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("%w: limit", errors.ErrInvalidFilter)
		}
	}

	return filter, page, limit, nil
}

func parseFloatParam(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidFilter, name)
	}
	return &v, nil
}

func parseIntParam(values url.Values, name string) (*int64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidFilter, name)
	}
	return &v, nil
}

// Search godoc
// @Summary Search public farmland listings
// @Tags farmland
// @Produce json
// @Param prefecture query string false "Prefecture substring"
// @Param city query string false "City substring"
// @Param minArea query number false "Minimum area in square meters"
// @Param maxArea query number false "Maximum area in square meters"
// @Param minPrice query integer false "Minimum monthly rent"
// @Param maxPrice query integer false "Maximum monthly rent"
// @Param keyword query string false "Keyword matched against name and description"
// @Param facilities query string false "Comma-separated facility keys, all required"
// @Param page query integer false "Page number (1-indexed)"
// @Param limit query integer false "Page size (1-100, default 10)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /farmland [get]
func (h *FarmlandHandler) Search(c echo.Context) error {
	filter, page, limit, err := parseSearchQuery(c.QueryParams())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	result, err := h.farmlandService.Search(c.Request().Context(), filter, page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	listings := make([]Listing, 0, len(result.Items))
	for _, f := range result.Items {
		listings = append(listings, toListing(f))
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Data: listings,
		Pagination: Pagination{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
	})
}

// Get godoc
// @Summary Get a single public listing
// @Tags farmland
// @Produce json
// @Param id path string true "Farmland ID"
// @Success 200 {object} Listing
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /farmland/{id} [get]
func (h *FarmlandHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid farmland ID",
			Code:  "INVALID_ID",
		})
	}

	farmland, err := h.farmlandService.GetPublic(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toListing(*farmland))
}

// CreateFarmlandRequest represents a listing registration request.
type CreateFarmlandRequest struct {
	Name          *string           `json:"name"`
	Prefecture    string            `json:"prefecture" validate:"required,min=2"`
	City          string            `json:"city" validate:"required,min=2"`
	Address       string            `json:"address" validate:"required,min=3"`
	Area          float64           `json:"area" validate:"required,gt=0"`
	Price         *int64            `json:"price"`
	AvailableFrom string            `json:"availableFrom" validate:"required"`
	AvailableTo   *string           `json:"availableTo"`
	Description   *string           `json:"description"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	Images        []string          `json:"images"`
	Facilities    *model.Facilities `json:"facilities"`
}

// Create godoc
// @Summary Register a new farmland listing
// @Tags farmland
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFarmlandRequest true "Listing data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /farmland [post]
func (h *FarmlandHandler) Create(c echo.Context) error {
	userID, role, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateFarmlandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	availableFrom, err := parseDate(req.AvailableFrom)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid availableFrom date",
			Code:  "INVALID_DATE",
		})
	}
	var availableTo *time.Time
	if req.AvailableTo != nil && *req.AvailableTo != "" {
		t, err := parseDate(*req.AvailableTo)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid availableTo date",
				Code:  "INVALID_DATE",
			})
		}
		availableTo = &t
	}

	farmland := &model.Farmland{
		Name:          req.Name,
		Prefecture:    req.Prefecture,
		City:          req.City,
		Address:       req.Address,
		Area:          req.Area,
		Price:         req.Price,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Images:        req.Images,
	}
	if req.Facilities != nil {
		farmland.Facilities = *req.Facilities
	}

	created, err := h.farmlandService.Create(c.Request().Context(), userID, role, farmland)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "farmland registered",
		"farmland": toListing(*created),
	})
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
