package routes

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"souq/apperr"
	"souq/models"
	"souq/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".svg": true,
}

type categoryForm struct {
	Name models.Translations `validate:"required,dive,omitempty,min=3,max=100"`
}

type productForm struct {
	Name        models.Translations `validate:"required,dive,omitempty,min=3,max=100"`
	Description models.Translations `validate:"required,dive,omitempty,min=3,max=1000"`
}

// parseCategoryForm validates a multipart category payload. The image
// file is required on create and optional on update.
func (h *Handlers) parseCategoryForm(c *fiber.Ctx, imageRequired bool) (*services.CategoryInput, *apperr.ValidationError) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, formError()
	}

	name := translationsFromForm(form.Value, "name")
	verr := apperr.NewValidationError()
	h.collectStructErrors(&categoryForm{Name: name}, verr)
	requireLocales("name", name, verr)

	var image *multipart.FileHeader
	if files := formFiles(form, "image"); len(files) > 0 {
		image = files[0]
		checkImageFile("image", image, verr)
	} else if imageRequired {
		verr.Fields.Add("image", "The image field is required.")
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return &services.CategoryInput{Name: name, Image: image}, nil
}

// parseProductForm validates a multipart product payload. On create the
// images and categories collections are required and non-empty; on
// update an absent collection means "leave as is".
func (h *Handlers) parseProductForm(c *fiber.Ctx, collectionsRequired bool) (*services.ProductInput, *apperr.ValidationError) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, formError()
	}

	name := translationsFromForm(form.Value, "name")
	description := translationsFromForm(form.Value, "description")
	verr := apperr.NewValidationError()
	h.collectStructErrors(&productForm{Name: name, Description: description}, verr)
	requireLocales("name", name, verr)
	requireLocales("description", description, verr)

	price := parsePrice(formValue(form.Value, "price"), verr)

	images := formFiles(form, "images")
	if collectionsRequired && len(images) == 0 {
		verr.Fields.Add("images", "The images field is required.")
	}
	for i, file := range images {
		checkImageFile(fmt.Sprintf("images.%d", i), file, verr)
	}

	categoryIDs := parseCategoryIDs(form.Value, verr)
	if collectionsRequired && len(categoryIDs) == 0 {
		verr.Fields.Add("categories", "The categories field is required.")
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return &services.ProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		Images:      images,
		Categories:  categoryIDs,
	}, nil
}

// collectStructErrors runs the validator and folds its errors into the
// field-error bag, keyed the way the API reports them ("name.en").
func (h *Handlers) collectStructErrors(form any, verr *apperr.ValidationError) {
	err := h.Validate.Struct(form)
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		verr.Fields.Add("form", "The payload could not be validated.")
		return
	}
	for _, fe := range ves {
		key := fieldKey(fe)
		verr.Fields.Add(key, fieldMessage(key, fe))
	}
}

var mapFieldRe = regexp.MustCompile(`^(\w+)\[(\w+)\]$`)

// fieldKey turns a validator namespace like "productForm.Name[en]" into
// the reported key "name.en".
func fieldKey(fe validator.FieldError) string {
	name := fe.Namespace()
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if m := mapFieldRe.FindStringSubmatch(name); m != nil {
		return strings.ToLower(m[1]) + "." + m[2]
	}
	return strings.ToLower(name)
}

func fieldMessage(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", key)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", key, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", key, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", key)
	}
}

// translationsFromForm collects name[en] style bracket fields for the
// configured locales. Unconfigured locales are ignored.
func translationsFromForm(values map[string][]string, field string) models.Translations {
	translations := models.Translations{}
	for _, locale := range models.Locales {
		if v, ok := values[fmt.Sprintf("%s[%s]", field, locale)]; ok && len(v) > 0 {
			translations[locale] = v[0]
		}
	}
	return translations
}

// requireLocales rejects partial translation maps: every configured
// locale must carry a value.
func requireLocales(field string, translations models.Translations, verr *apperr.ValidationError) {
	for _, locale := range translations.Missing() {
		verr.Fields.Add(field+"."+locale, fmt.Sprintf("The %s.%s field is required.", field, locale))
	}
}

func parsePrice(raw string, verr *apperr.ValidationError) decimal.Decimal {
	if raw == "" {
		verr.Fields.Add("price", "The price field is required.")
		return decimal.Zero
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Fields.Add("price", "The price field must be a number.")
		return decimal.Zero
	}
	if price.IsNegative() {
		verr.Fields.Add("price", "The price field must be at least 0.")
		return decimal.Zero
	}
	return price
}

func parseCategoryIDs(values map[string][]string, verr *apperr.ValidationError) []uint {
	raw := values["categories"]
	if len(raw) == 0 {
		raw = values["categories[]"]
	}

	ids := make([]uint, 0, len(raw))
	for i, v := range raw {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			verr.Fields.Add(fmt.Sprintf("categories.%d", i),
				fmt.Sprintf("The categories.%d field must be a valid id.", i))
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func checkImageFile(field string, file *multipart.FileHeader, verr *apperr.ValidationError) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		verr.Fields.Add(field,
			fmt.Sprintf("The %s field must be a file of type: jpeg, png, jpg, gif, svg.", field))
	}
}

func formValue(values map[string][]string, field string) string {
	if v, ok := values[field]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func formFiles(form *multipart.Form, field string) []*multipart.FileHeader {
	if files, ok := form.File[field]; ok && len(files) > 0 {
		return files
	}
	return form.File[field+"[]"]
}

func formError() *apperr.ValidationError {
	verr := apperr.NewValidationError()
	verr.Fields.Add("form", "The request payload must be multipart/form-data.")
	return verr
}
