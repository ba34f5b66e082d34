package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"souq/apperr"
	"souq/models"
	"souq/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const categoryArea = "categories"

// CategoryInput is the validated payload for creating or updating a
// category. Image is nil when the request did not include a new file.
type CategoryInput struct {
	Name  models.Translations
	Image *multipart.FileHeader
}

type CategoryService struct {
	db     *gorm.DB
	images *utils.ImageManager
	log    *zap.SugaredLogger
}

func NewCategoryService(db *gorm.DB, images *utils.ImageManager, log *zap.SugaredLogger) *CategoryService {
	return &CategoryService{db: db, images: images, log: log}
}

// All returns every category, unpaginated.
func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Find(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Store uploads the image (if any), then inserts the category row. The
// per-locale name uniqueness check runs first so nothing is written for
// a rejected payload.
func (s *CategoryService) Store(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if err := s.checkNameUnique(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	var key string
	if input.Image != nil {
		uploaded, err := s.images.UploadSingle(input.Image, categoryArea)
		if err != nil {
			return nil, err
		}
		key = uploaded
	}

	category := &models.Category{Name: input.Name, Image: key}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	s.log.Infow("category created", "category_id", category.ID)
	return category, nil
}

// Update replaces the image when a new file is supplied (old file is
// deleted first, then the new one written) and applies field updates.
func (s *CategoryService) Update(ctx context.Context, input CategoryInput, category *models.Category) (*models.Category, error) {
	if err := s.checkNameUnique(ctx, input.Name, category.ID); err != nil {
		return nil, err
	}

	if input.Image != nil {
		if category.Image != "" {
			if err := s.images.Delete(category.Image, categoryArea); err != nil {
				return nil, err
			}
		}
		key, err := s.images.UploadSingle(input.Image, categoryArea)
		if err != nil {
			return nil, err
		}
		category.Image = key
	}

	category.Name = input.Name
	if err := s.db.WithContext(ctx).Model(category).
		Select("name", "image").Updates(category).Error; err != nil {
		return nil, err
	}
	s.log.Infow("category updated", "category_id", category.ID)
	return category, nil
}

// Destroy removes the category row and its image file. Product links in
// category_product are NOT detached; leftover links are counted and
// reported so the orphaned rows are at least visible.
func (s *CategoryService) Destroy(ctx context.Context, category *models.Category) error {
	if err := s.db.WithContext(ctx).Delete(category).Error; err != nil {
		return err
	}

	if category.Image != "" {
		if err := s.images.Delete(category.Image, categoryArea); err != nil {
			return err
		}
	}

	var orphaned int64
	if err := s.db.WithContext(ctx).Table("category_product").
		Where("category_id = ?", category.ID).Count(&orphaned).Error; err == nil && orphaned > 0 {
		s.log.Warnw("deleted category still linked to products, association rows are orphaned",
			"category_id", category.ID, "links", orphaned)
	}

	s.log.Infow("category deleted", "category_id", category.ID)
	return nil
}

// checkNameUnique enforces global per-locale uniqueness of the name.
// Rows whose id equals exceptID are ignored (the category being updated).
func (s *CategoryService) checkNameUnique(ctx context.Context, name models.Translations, exceptID uint) error {
	verr := apperr.NewValidationError()
	for _, locale := range models.Locales {
		value, ok := name[locale]
		if !ok || value == "" {
			continue
		}

		query := s.db.WithContext(ctx).Model(&models.Category{}).
			Where(datatypes.JSONQuery("name").Equals(value, locale))
		if exceptID != 0 {
			query = query.Where("id <> ?", exceptID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			verr.Fields.Add("name."+locale,
				fmt.Sprintf("The name.%s has already been taken.", locale))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
