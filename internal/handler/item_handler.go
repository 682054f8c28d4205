package handler

import (
	"net/http"
	"strconv"
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

// ItemHandler handles item endpoints.
type ItemHandler struct {
	items service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// ItemPayload is the wire representation of an item create/update request.
type ItemPayload struct {
	Title            string                   `json:"title" validate:"required"`
	Category         uuid.UUID                `json:"category" validate:"required"`
	UserID           uuid.UUID                `json:"userId" validate:"required"`
	OnlyForCompanies bool                     `json:"onlyForCompanies"`
	Metadata         model.Metadata           `json:"metadata"`
	ItemType         model.ItemType           `json:"itemType" validate:"required"`
	Images           []string                 `json:"images"`
	ThumbnailURL     *string                  `json:"thumbnailUrl"`
	Properties       model.ItemProperties     `json:"properties"`
	Price            decimal.Decimal          `json:"price"`
	PriceUnit        string                   `json:"priceUnit" validate:"required"`
	PaymentMethod    string                   `json:"paymentMethod" validate:"required"`
	Delivery         bool                     `json:"delivery"`
	DeliveryPrice    *decimal.Decimal         `json:"deliveryPrice"`
	Expired          bool                     `json:"expired"`
	ExpiresAt        *time.Time               `json:"expiresAt"`
}

// ItemResponse is an item plus its image URLs.
type ItemResponse struct {
	model.Item
	Images []string `json:"images"`
}

func (p *ItemPayload) toModel() *model.Item {
	item := &model.Item{
		Title:            p.Title,
		CategoryID:       p.Category,
		UserID:           p.UserID,
		OnlyForCompanies: p.OnlyForCompanies,
		Metadata:         p.Metadata,
		ItemType:         p.ItemType,
		ThumbnailURL:     p.ThumbnailURL,
		Properties:       p.Properties,
		Price:            p.Price,
		PriceUnit:        p.PriceUnit,
		PaymentMethod:    p.PaymentMethod,
		Delivery:         p.Delivery,
		DeliveryPrice:    p.DeliveryPrice,
		Expired:          p.Expired,
	}
	if p.ExpiresAt != nil {
		item.ExpiresAt = *p.ExpiresAt
	}
	return item
}

func (h *ItemHandler) respond(c echo.Context, status int, item *model.Item) error {
	images, err := h.items.Images(c.Request().Context(), item.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(status, ItemResponse{Item: *item, Images: images})
}

// CreateItem godoc
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemPayload true "Item payload"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var payload ItemPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.items.Create(c.Request().Context(), payload.toModel(), payload.Images, caller.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return h.respond(c, http.StatusOK, item)
}

// ListItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Param userId query string false "Filter by owner"
// @Param categoryId query string false "Filter by category"
// @Param itemType query string false "Filter by item type"
// @Param includeExpired query bool false "Include expired items"
// @Param firstResult query int false "Offset"
// @Param maxResults query int false "Limit"
// @Param sortByDateOldestFirst query bool false "Oldest first"
// @Success 200 {array} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	caller := auth.FromContext(c)

	filter := repository.ItemListFilter{}
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
	if v := c.QueryParam("itemType"); v != "" {
		itemType := model.ItemType(v)
		if !itemType.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid itemType")
		}
		filter.ItemType = &itemType
	}
	if v := c.QueryParam("firstResult"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid firstResult")
		}
		filter.FirstResult = &n
	}
	if v := c.QueryParam("maxResults"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid maxResults")
		}
		filter.MaxResults = &n
	}
	filter.OldestFirst = c.QueryParam("sortByDateOldestFirst") == "true"
	filter.IncludeExpired = c.QueryParam("includeExpired") == "true"

	// Expired listings of other users are visible to admins only.
	if filter.IncludeExpired && !caller.IsAdmin() {
		if caller == nil || filter.UserID == nil || *filter.UserID != caller.UserID {
			return echo.NewHTTPError(http.StatusForbidden, "only admins can list other users expired items")
		}
	}

	items, err := h.items.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		images, err := h.items.Images(c.Request().Context(), items[i].ID)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		responses = append(responses, ItemResponse{Item: items[i], Images: images})
	}
	return c.JSON(http.StatusOK, responses)
}

// FindItem godoc
// @Summary Find item by id
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) FindItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}

	item, err := h.items.Find(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// Expired items are visible to their owner only.
	caller := auth.FromContext(c)
	if item.Expired && (caller == nil || caller.UserID != item.UserID) {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "item not found",
			Code:  "ITEM_NOT_FOUND",
		})
	}
	return h.respond(c, http.StatusOK, item)
}

// UpdateItem godoc
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body ItemPayload true "Item payload"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}

	var payload ItemPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.items.Update(c.Request().Context(), id, payload.toModel(), payload.Images, caller.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return h.respond(c, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete item
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	caller := auth.FromContext(c)
	if !caller.IsUser() {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
