package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"marketplace/internal/auth"
	"marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
	"marketplace/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UserPayload is the wire representation of a user create/update request.
// ID, when present on create, is the identity-provider account id.
type UserPayload struct {
	ID             *uuid.UUID         `json:"id"`
	Name           string             `json:"name" validate:"required"`
	Address        string             `json:"address" validate:"required"`
	Email          string             `json:"email" validate:"required,email"`
	PhoneNumber    string             `json:"phoneNumber" validate:"required"`
	CompanyAccount bool               `json:"companyAccount"`
	Verified       bool               `json:"verified"`
	CompanyID      *string            `json:"companyId"`
	OfficeInfo     *string            `json:"officeInfo"`
	Coordinates    *model.Coordinates `json:"coordinates"`
	Description    *string            `json:"description"`
	LogoURL        *string            `json:"logoUrl"`
}

func (p *UserPayload) toModel() *model.User {
	user := &model.User{
		Name:           p.Name,
		Address:        p.Address,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		CompanyAccount: p.CompanyAccount,
		Verified:       p.Verified,
		CompanyID:      p.CompanyID,
		OfficeInfo:     p.OfficeInfo,
		Coordinates:    p.Coordinates,
		Description:    p.Description,
		LogoURL:        p.LogoURL,
	}
	if p.ID != nil {
		user.ID = *p.ID
	}
	return user
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserPayload true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var payload UserPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := payload.toModel()
	// Self-registration: the new account itself is the creator unless an
	// authenticated caller (e.g. an admin) is doing the creating.
	creatorID := user.ID
	if caller := auth.FromContext(c); caller != nil {
		creatorID = caller.UserID
	}

	created, err := h.users.Create(c.Request().Context(), user, creatorID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param companyAccount query bool false "Filter by company account flag"
// @Param verified query bool false "Filter by verified flag"
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	filter := repository.UserListFilter{}
	if v := c.QueryParam("companyAccount"); v != "" {
		b := v == "true"
		filter.CompanyAccount = &b
	}
	if v := c.QueryParam("verified"); v != "" {
		b := v == "true"
		filter.Verified = &b
	}

	users, err := h.users.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// FindUser godoc
// @Summary Find user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) FindUser(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() && !caller.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	user, err := h.users.Find(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// FindPublicUser godoc
// @Summary Find the public profile of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.PublicUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publicUsers/{id} [get]
func (h *UserHandler) FindPublicUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	user, err := h.users.FindPublic(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body UserPayload true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	var payload UserPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), id, payload.toModel(), caller.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
