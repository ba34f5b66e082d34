package routes

import (
	"souq/lang"
	"souq/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/products
func (h *Handlers) getAllProducts(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	products, err := h.Products.All(c.UserContext())
	if err != nil {
		return h.fail(c, locale, "products", err)
	}
	return utils.Success(c, NewProductCollection(products, locale, h.BaseURL),
		lang.T(locale, "products.list_success"))
}

// GET /api/products/:id
func (h *Handlers) getProduct(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "products.not_found"), fiber.StatusNotFound)
	}

	product, err := h.Products.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "products", err)
	}
	return utils.Success(c, NewProductResource(product, locale, h.BaseURL),
		lang.T(locale, "products.show_success"))
}

// POST /api/products
func (h *Handlers) createProduct(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	input, verr := h.parseProductForm(c, true)
	if verr != nil {
		countOp("product", "create", "invalid")
		return utils.Error(c, verr.Fields, lang.T(locale, "errors.validation"), fiber.StatusUnprocessableEntity)
	}

	product, err := h.Products.Store(c.UserContext(), *input)
	if err != nil {
		countOp("product", "create", "error")
		return h.fail(c, locale, "products", err)
	}

	countOp("product", "create", "success")
	publishEvent("product.created", product.ID)
	return utils.Success(c, NewProductResource(product, locale, h.BaseURL),
		lang.T(locale, "products.create_success"), fiber.StatusCreated)
}

// POST /api/products/:id
func (h *Handlers) updateProduct(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "products.not_found"), fiber.StatusNotFound)
	}

	product, err := h.Products.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "products", err)
	}

	input, verr := h.parseProductForm(c, false)
	if verr != nil {
		countOp("product", "update", "invalid")
		return utils.Error(c, verr.Fields, lang.T(locale, "errors.validation"), fiber.StatusUnprocessableEntity)
	}

	product, err = h.Products.Update(c.UserContext(), *input, product)
	if err != nil {
		countOp("product", "update", "error")
		return h.fail(c, locale, "products", err)
	}

	countOp("product", "update", "success")
	publishEvent("product.updated", product.ID)
	return utils.Success(c, NewProductResource(product, locale, h.BaseURL),
		lang.T(locale, "products.update_success"))
}

// DELETE /api/products/:id
func (h *Handlers) deleteProduct(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "products.not_found"), fiber.StatusNotFound)
	}

	product, err := h.Products.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "products", err)
	}

	if err := h.Products.Destroy(c.UserContext(), product); err != nil {
		countOp("product", "delete", "error")
		return h.fail(c, locale, "products", err)
	}

	countOp("product", "delete", "success")
	publishEvent("product.deleted", product.ID)
	return utils.Success(c, fiber.Map{}, lang.T(locale, "products.delete_success"))
}
