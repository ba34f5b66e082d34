package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souq/db"
	"souq/services"
	"souq/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testBaseURL = "http://localhost:3000"

type testServer struct {
	app    *fiber.App
	db     *gorm.DB
	images *utils.ImageManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	images := utils.NewImageManager(t.TempDir())
	log := zap.NewNop().Sugar()
	handlers := NewHandlers(
		services.NewCategoryService(database, images, log),
		services.NewProductService(database, images, log),
		testBaseURL, log,
	)

	app := fiber.New()
	SetupRoutes(app, handlers)
	return &testServer{app: app, db: database, images: images}
}

// envelope is the standard API response shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, target string, body *bytes.Buffer, contentType string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = body
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

// multipartBody builds a multipart payload from bracket-keyed fields and
// named files.
type filePart struct {
	field, name, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// fileHeaderNamed is enough for checks that only look at the filename.
func fileHeaderNamed(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func decodeFields(t *testing.T, data json.RawMessage) map[string][]string {
	t.Helper()

	fields := map[string][]string{}
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}
