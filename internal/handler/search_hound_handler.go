package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"marketplace/internal/auth"
	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
	"marketplace/internal/service"
)

// SearchHoundHandler handles search hound endpoints.
type SearchHoundHandler struct {
	hounds service.SearchHoundService
}

// NewSearchHoundHandler creates a new search hound handler.
func NewSearchHoundHandler(hounds service.SearchHoundService) *SearchHoundHandler {
	return &SearchHoundHandler{hounds: hounds}
}

// SearchHoundPayload is the wire representation of a search hound
// create/update request.
type SearchHoundPayload struct {
	Name            string           `json:"name" validate:"required"`
	NotificationsOn bool             `json:"notificationsOn"`
	CategoryID      uuid.UUID        `json:"categoryId" validate:"required"`
	UserID          uuid.UUID        `json:"userId" validate:"required"`
	Expires         *time.Time       `json:"expires"`
	MinPrice        *decimal.Decimal `json:"minPrice"`
	MaxPrice        *decimal.Decimal `json:"maxPrice"`
}

func (p *SearchHoundPayload) toModel() *model.SearchHound {
	return &model.SearchHound{
		Name:            p.Name,
		NotificationsOn: p.NotificationsOn,
		CategoryID:      p.CategoryID,
		UserID:          p.UserID,
		Expires:         p.Expires,
		MinPrice:        p.MinPrice,
		MaxPrice:        p.MaxPrice,
	}
}

// CreateSearchHound godoc
// @Summary Create search hound
// @Tags searchHounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param searchHound body SearchHoundPayload true "Search hound payload"
// @Success 200 {object} model.SearchHound
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /searchHounds [post]
func (h *SearchHoundHandler) CreateSearchHound(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var payload SearchHoundPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hound, err := h.hounds.Create(c.Request().Context(), payload.toModel(), caller.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, hound)
}

// ListSearchHounds godoc
// @Summary List search hounds
// @Tags searchHounds
// @Produce json
// @Security BearerAuth
// @Param userId query string false "Filter by owner"
// @Param categoryId query string false "Filter by watched category"
// @Success 200 {array} model.SearchHound
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /searchHounds [get]
func (h *SearchHoundHandler) ListSearchHounds(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	filter := repository.SearchHoundListFilter{}
	if v := c.QueryParam("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
		}
		filter.UserID = &id
	}
	if v := c.QueryParam("categoryId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		filter.CategoryID = &id
	}

	hounds, err := h.hounds.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, hounds)
}

// FindSearchHound godoc
// @Summary Find search hound by id
// @Tags searchHounds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Search hound ID"
// @Success 200 {object} model.SearchHound
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /searchHounds/{id} [get]
func (h *SearchHoundHandler) FindSearchHound(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search hound ID")
	}

	hound, err := h.hounds.Find(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, hound)
}

// UpdateSearchHound godoc
// @Summary Update search hound
// @Tags searchHounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Search hound ID"
// @Param searchHound body SearchHoundPayload true "Search hound payload"
// @Success 200 {object} model.SearchHound
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /searchHounds/{id} [put]
func (h *SearchHoundHandler) UpdateSearchHound(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search hound ID")
	}

	var payload SearchHoundPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hound, err := h.hounds.Update(c.Request().Context(), id, payload.toModel(), caller.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, hound)
}

// DeleteSearchHound godoc
// @Summary Delete search hound
// @Tags searchHounds
// @Security BearerAuth
// @Param id path string true "Search hound ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /searchHounds/{id} [delete]
func (h *SearchHoundHandler) DeleteSearchHound(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search hound ID")
	}

	if err := h.hounds.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
