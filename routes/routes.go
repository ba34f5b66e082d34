package routes

import (
	"errors"

	"souq/apperr"
	"souq/lang"
	"souq/models"
	"souq/services"
	"souq/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers bundles the services and request-scoped helpers the route
// handlers need.
type Handlers struct {
	Categories *services.CategoryService
	Products   *services.ProductService
	Validate   *validator.Validate
	BaseURL    string
	Log        *zap.SugaredLogger
}

func NewHandlers(categories *services.CategoryService, products *services.ProductService, baseURL string, log *zap.SugaredLogger) *Handlers {
	return &Handlers{
		Categories: categories,
		Products:   products,
		Validate:   validator.New(),
		BaseURL:    baseURL,
		Log:        log,
	}
}

func SetupRoutes(app *fiber.App, h *Handlers) {
	// Catalog event feed
	app.Get("/ws", catalogFeedHandler(h.Log))
	go catalogEventLoop(h.Log)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Category routes. Updates go through POST because the payloads are
	// multipart forms.
	categories := api.Group("/categories")
	categories.Get("/", h.getAllCategories)
	categories.Post("/", h.createCategory)
	categories.Get("/:id", h.getCategory)
	categories.Post("/:id", h.updateCategory)
	categories.Delete("/:id", h.deleteCategory)

	// Product routes
	products := api.Group("/products")
	products.Get("/", h.getAllProducts)
	products.Post("/", h.createProduct)
	products.Get("/:id", h.getProduct)
	products.Post("/:id", h.updateProduct)
	products.Delete("/:id", h.deleteProduct)
}

// resolveLocale picks the response locale from the lang query parameter,
// falling back to the default for anything unconfigured.
func resolveLocale(c *fiber.Ctx) string {
	locale := c.Query("lang", models.DefaultLocale)
	if !models.ValidLocale(locale) {
		return models.DefaultLocale
	}
	return locale
}

// fail maps a service error onto the response envelope: 422 for
// validation errors, 404 for missing entities, 500 otherwise.
func (h *Handlers) fail(c *fiber.Ctx, locale, entity string, err error) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return utils.Error(c, verr.Fields, lang.T(locale, "errors.validation"), fiber.StatusUnprocessableEntity)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return utils.Error(c, nil, lang.T(locale, entity+".not_found"), fiber.StatusNotFound)
	}
	h.Log.Errorw("request failed", "path", c.Path(), "error", err)
	return utils.Error(c, nil, lang.T(locale, "errors.internal"), fiber.StatusInternalServerError)
}
