package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"souq/apperr"
	"souq/models"
	"souq/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const productArea = "products"

// ProductInput is the validated payload for creating or updating a
// product. Empty Images/Categories on update mean "leave untouched";
// a non-empty set replaces (images) or synchronizes (categories) the
// whole collection.
type ProductInput struct {
	Name        models.Translations
	Description models.Translations
	Price       decimal.Decimal
	Images      []*multipart.FileHeader
	Categories  []uint
}

type ProductService struct {
	db     *gorm.DB
	images *utils.ImageManager
	log    *zap.SugaredLogger
}

func NewProductService(db *gorm.DB, images *utils.ImageManager, log *zap.SugaredLogger) *ProductService {
	return &ProductService{db: db, images: images, log: log}
}

// All returns every product with images and categories eagerly loaded.
func (s *ProductService) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Preload("Images").Preload("Categories").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Find(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		Preload("Images").Preload("Categories").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Store inserts the product row, uploads its images in order and
// attaches the category links, then reloads the associations.
func (s *ProductService) Store(ctx context.Context, input ProductInput) (*models.Product, error) {
	categories, err := s.resolveCategories(ctx, input.Categories)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}

	if len(input.Images) > 0 {
		if err := s.uploadImages(ctx, product, input.Images); err != nil {
			return nil, err
		}
	}

	if len(categories) > 0 {
		if err := s.db.WithContext(ctx).Model(product).
			Association("Categories").Append(&categories); err != nil {
			return nil, err
		}
	}

	s.log.Infow("product created", "product_id", product.ID,
		"images", len(input.Images), "categories", len(categories))
	return s.Find(ctx, product.ID)
}

// Update applies full-replace semantics to the image set (when new
// images are supplied), set-sync semantics to the category links (when
// supplied), then updates the scalar fields.
func (s *ProductService) Update(ctx context.Context, input ProductInput, product *models.Product) (*models.Product, error) {
	if len(input.Images) > 0 {
		if err := s.replaceImages(ctx, product, input.Images); err != nil {
			return nil, err
		}
	}

	if len(input.Categories) > 0 {
		categories, err := s.resolveCategories(ctx, input.Categories)
		if err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(product).
			Association("Categories").Replace(&categories); err != nil {
			return nil, err
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	if err := s.db.WithContext(ctx).Model(product).
		Select("name", "description", "price").Updates(product).Error; err != nil {
		return nil, err
	}

	s.log.Infow("product updated", "product_id", product.ID)
	return s.Find(ctx, product.ID)
}

// Destroy removes the image rows, the category links and the product
// row, then deletes the image files. Row deletion happens first so a
// failure can orphan a file but never leave a dangling reference.
func (s *ProductService) Destroy(ctx context.Context, product *models.Product) error {
	keys := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		keys = append(keys, image.Image)
	}

	if len(product.Images) > 0 {
		if err := s.db.WithContext(ctx).
			Where("product_id = ?", product.ID).
			Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Model(product).
		Association("Categories").Clear(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(product).Error; err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.images.Delete(key, productArea); err != nil {
			return err
		}
	}

	s.log.Infow("product deleted", "product_id", product.ID, "images", len(keys))
	return nil
}

// replaceImages drops every owned image (rows first, then files) and
// uploads the new set. Partial replacement is not supported.
func (s *ProductService) replaceImages(ctx context.Context, product *models.Product, files []*multipart.FileHeader) error {
	old := product.Images

	if len(old) > 0 {
		if err := s.db.WithContext(ctx).
			Where("product_id = ?", product.ID).
			Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		for _, image := range old {
			if err := s.images.Delete(image.Image, productArea); err != nil {
				return err
			}
		}
	}
	product.Images = nil

	return s.uploadImages(ctx, product, files)
}

// uploadImages stores the files and creates one image row per file,
// preserving upload order.
func (s *ProductService) uploadImages(ctx context.Context, product *models.Product, files []*multipart.FileHeader) error {
	keys, err := s.images.UploadMultiple(files, productArea)
	if err != nil {
		return err
	}

	rows := make([]models.ProductImage, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, models.ProductImage{ProductID: product.ID, Image: key})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// resolveCategories loads the referenced categories and rejects the
// payload when any id does not exist, mirroring an exists rule.
func (s *ProductService) resolveCategories(ctx context.Context, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}

	found := make(map[uint]bool, len(categories))
	for _, category := range categories {
		found[category.ID] = true
	}

	verr := apperr.NewValidationError()
	for i, id := range ids {
		if !found[id] {
			verr.Fields.Add(fmt.Sprintf("categories.%d", i),
				fmt.Sprintf("The selected categories.%d is invalid.", i))
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return categories, nil
}
