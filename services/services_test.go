package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"souq/db"
	"souq/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory sqlite database. The shared-cache
// DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return database
}

func newTestServices(t *testing.T) (*CategoryService, *ProductService, *utils.ImageManager) {
	t.Helper()

	database := newTestDB(t)
	images := utils.NewImageManager(t.TempDir())
	log := zap.NewNop().Sugar()
	return NewCategoryService(database, images, log),
		NewProductService(database, images, log),
		images
}

// fakeUpload builds a real multipart.FileHeader by round-tripping a
// multipart body, the same shape fiber hands to the services.
func fakeUpload(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}
