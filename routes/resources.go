package routes

import (
	"souq/models"

	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04:05"

// CategoryResource is the API snapshot of a category: the translatable
// name flattened to the requested locale and the image resolved to a
// servable URL.
type CategoryResource struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewCategoryResource(category *models.Category, locale, baseURL string) CategoryResource {
	image := ""
	if category.Image != "" {
		image = baseURL + "/uploads/categories/" + category.Image
	}
	return CategoryResource{
		ID:        category.ID,
		Name:      category.Name.Get(locale),
		Image:     image,
		CreatedAt: category.CreatedAt.Format(timeLayout),
		UpdatedAt: category.UpdatedAt.Format(timeLayout),
	}
}

func NewCategoryCollection(categories []models.Category, locale, baseURL string) []CategoryResource {
	resources := make([]CategoryResource, 0, len(categories))
	for i := range categories {
		resources = append(resources, NewCategoryResource(&categories[i], locale, baseURL))
	}
	return resources
}

type ProductResource struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Images      []string           `json:"images"`
	Categories  []CategoryResource `json:"categories"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

func NewProductResource(product *models.Product, locale, baseURL string) ProductResource {
	images := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, baseURL+"/uploads/products/"+image.Image)
	}
	return ProductResource{
		ID:          product.ID,
		Name:        product.Name.Get(locale),
		Description: product.Description.Get(locale),
		Price:       product.Price,
		Images:      images,
		Categories:  NewCategoryCollection(product.Categories, locale, baseURL),
		CreatedAt:   product.CreatedAt.Format(timeLayout),
		UpdatedAt:   product.UpdatedAt.Format(timeLayout),
	}
}

func NewProductCollection(products []models.Product, locale, baseURL string) []ProductResource {
	resources := make([]ProductResource, 0, len(products))
	for i := range products {
		resources = append(resources, NewProductResource(&products[i], locale, baseURL))
	}
	return resources
}
