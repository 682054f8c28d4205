package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"marketplace/internal/config"
	"marketplace/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	itemHandler *handler.ItemHandler,
	searchHoundHandler *handler.SearchHoundHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	signingKey := []byte(cfg.JWTSecret)

	// Optional identity: a valid bearer token resolves the caller, anything
	// else falls through as anonymous.
	optionalJWT := echojwt.WithConfig(echojwt.Config{
		SigningKey:             signingKey,
		TokenLookup:            "header:" + echo.HeaderAuthorization,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})

	// Required identity: the token must be present and valid. Role checks
	// happen in the handlers.
	requiredJWT := echojwt.WithConfig(echojwt.Config{
		SigningKey:  signingKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
	})

	api := e.Group("/v1")

	api.GET("/system/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	// Anonymous-friendly routes
	public := api.Group("", optionalJWT)
	public.POST("/users", userHandler.CreateUser)
	public.GET("/publicUsers/:id", userHandler.FindPublicUser)
	public.GET("/categories", categoryHandler.ListCategories)
	public.GET("/categories/:id", categoryHandler.FindCategory)
	public.GET("/items", itemHandler.ListItems)
	public.GET("/items/:id", itemHandler.FindItem)

	// Secured routes (require a provider-issued JWT)
	secured := api.Group("", requiredJWT)

	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.FindUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	secured.POST("/categories", categoryHandler.CreateCategory)
	secured.PUT("/categories/:id", categoryHandler.UpdateCategory)
	secured.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	secured.POST("/items", itemHandler.CreateItem)
	secured.PUT("/items/:id", itemHandler.UpdateItem)
	secured.DELETE("/items/:id", itemHandler.DeleteItem)

	secured.POST("/searchHounds", searchHoundHandler.CreateSearchHound)
	secured.GET("/searchHounds", searchHoundHandler.ListSearchHounds)
	secured.GET("/searchHounds/:id", searchHoundHandler.FindSearchHound)
	secured.PUT("/searchHounds/:id", searchHoundHandler.UpdateSearchHound)
	secured.DELETE("/searchHounds/:id", searchHoundHandler.DeleteSearchHound)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
