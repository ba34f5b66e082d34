package routes

import (
	"strconv"

	"souq/lang"
	"souq/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/categories
func (h *Handlers) getAllCategories(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	categories, err := h.Categories.All(c.UserContext())
	if err != nil {
		return h.fail(c, locale, "categories", err)
	}
	return utils.Success(c, NewCategoryCollection(categories, locale, h.BaseURL),
		lang.T(locale, "categories.list_success"))
}

// GET /api/categories/:id
func (h *Handlers) getCategory(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "categories.not_found"), fiber.StatusNotFound)
	}

	category, err := h.Categories.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "categories", err)
	}
	return utils.Success(c, NewCategoryResource(category, locale, h.BaseURL),
		lang.T(locale, "categories.show_success"))
}

// POST /api/categories
func (h *Handlers) createCategory(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	input, verr := h.parseCategoryForm(c, true)
	if verr != nil {
		countOp("category", "create", "invalid")
		return utils.Error(c, verr.Fields, lang.T(locale, "errors.validation"), fiber.StatusUnprocessableEntity)
	}

	category, err := h.Categories.Store(c.UserContext(), *input)
	if err != nil {
		countOp("category", "create", "error")
		return h.fail(c, locale, "categories", err)
	}

	countOp("category", "create", "success")
	publishEvent("category.created", category.ID)
	return utils.Success(c, NewCategoryResource(category, locale, h.BaseURL),
		lang.T(locale, "categories.create_success"), fiber.StatusCreated)
}

// POST /api/categories/:id
func (h *Handlers) updateCategory(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "categories.not_found"), fiber.StatusNotFound)
	}

	category, err := h.Categories.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "categories", err)
	}

	input, verr := h.parseCategoryForm(c, false)
	if verr != nil {
		countOp("category", "update", "invalid")
		return utils.Error(c, verr.Fields, lang.T(locale, "errors.validation"), fiber.StatusUnprocessableEntity)
	}

	category, err = h.Categories.Update(c.UserContext(), *input, category)
	if err != nil {
		countOp("category", "update", "error")
		return h.fail(c, locale, "categories", err)
	}

	countOp("category", "update", "success")
	publishEvent("category.updated", category.ID)
	return utils.Success(c, NewCategoryResource(category, locale, h.BaseURL),
		lang.T(locale, "categories.update_success"))
}

// DELETE /api/categories/:id
func (h *Handlers) deleteCategory(c *fiber.Ctx) error {
	locale := resolveLocale(c)

	id, err := parseID(c)
	if err != nil {
		return utils.Error(c, nil, lang.T(locale, "categories.not_found"), fiber.StatusNotFound)
	}

	category, err := h.Categories.Find(c.UserContext(), id)
	if err != nil {
		return h.fail(c, locale, "categories", err)
	}

	if err := h.Categories.Destroy(c.UserContext(), category); err != nil {
		countOp("category", "delete", "error")
		return h.fail(c, locale, "categories", err)
	}

	countOp("category", "delete", "success")
	publishEvent("category.deleted", category.ID)
	return utils.Success(c, fiber.Map{}, lang.T(locale, "categories.delete_success"))
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
