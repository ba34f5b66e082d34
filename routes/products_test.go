package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"souq/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) seedCategory(t *testing.T, en, ar string) uint {
	t.Helper()

	body, contentType := multipartBody(t,
		map[string]string{"name[en]": en, "name[ar]": ar},
		filePart{"image", "category.jpg", "category-bytes"},
	)
	resp, env := s.do(t, http.MethodPost, "/api/categories", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func productFields(categoryIDs ...uint) map[string]string {
	fields := map[string]string{
		"name[en]":        "Drill",
		"name[ar]":        "مثقاب",
		"description[en]": "Cordless drill",
		"description[ar]": "مثقاب لاسلكي",
		"price":           "49.99",
	}
	if len(categoryIDs) > 0 {
		fields["categories"] = fmt.Sprint(categoryIDs[0])
	}
	return fields
}

func TestCreateProduct(t *testing.T) {
	server := newTestServer(t)
	categoryID := server.seedCategory(t, "Tools", "أدوات")

	body, contentType := multipartBody(t, productFields(categoryID),
		filePart{"images", "front.jpg", "front"},
		filePart{"images", "back.png", "back"},
	)
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Product created successfully.", env.Message)

	var data ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Drill", data.Name)
	assert.Equal(t, "Cordless drill", data.Description)
	require.Len(t, data.Images, 2)
	for _, url := range data.Images {
		assert.Regexp(t, `^http://localhost:3000/uploads/products/Image_.+$`, url)
	}
	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Tools", data.Categories[0].Name)
}

func TestCreateProductValidation(t *testing.T) {
	server := newTestServer(t)

	// missing everything but a bad price
	body, contentType := multipartBody(t, map[string]string{"price": "-5"})
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	fields := decodeFields(t, env.Data)
	assert.Contains(t, fields, "name.en")
	assert.Contains(t, fields, "description.ar")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "images")
	assert.Contains(t, fields, "categories")
}

func TestCreateProductUnknownCategory(t *testing.T) {
	server := newTestServer(t)

	body, contentType := multipartBody(t, productFields(999),
		filePart{"images", "a.jpg", "a"},
	)
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	fields := decodeFields(t, env.Data)
	assert.Contains(t, fields, "categories.0")
}

func TestUpdateProductReplacesImages(t *testing.T) {
	server := newTestServer(t)
	categoryID := server.seedCategory(t, "Tools", "أدوات")

	body, contentType := multipartBody(t, productFields(categoryID),
		filePart{"images", "a.jpg", "a"},
		filePart{"images", "b.jpg", "b"},
	)
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created.Images, 2)

	body, contentType = multipartBody(t, productFields(),
		filePart{"images", "c.jpg", "c"},
	)
	resp, env = server.do(t, http.MethodPost, fmt.Sprintf("/api/products/%d", created.ID), body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Len(t, updated.Images, 1)
	assert.NotContains(t, created.Images, updated.Images[0])

	// no image rows reference the replaced keys anymore
	var rows int64
	require.NoError(t, server.db.Model(&models.ProductImage{}).
		Where("product_id = ?", created.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestUpdateProductWithoutImagesKeepsThem(t *testing.T) {
	server := newTestServer(t)
	categoryID := server.seedCategory(t, "Tools", "أدوات")

	body, contentType := multipartBody(t, productFields(categoryID),
		filePart{"images", "a.jpg", "a"},
		filePart{"images", "b.jpg", "b"},
	)
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &created))

	body, contentType = multipartBody(t, productFields())
	resp, env = server.do(t, http.MethodPost, fmt.Sprintf("/api/products/%d", created.ID), body, contentType)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, created.Images, updated.Images)
}

func TestDeleteProduct(t *testing.T) {
	server := newTestServer(t)
	categoryID := server.seedCategory(t, "Tools", "أدوات")

	body, contentType := multipartBody(t, productFields(categoryID),
		filePart{"images", "a.jpg", "a"},
	)
	resp, env := server.do(t, http.MethodPost, "/api/products", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env = server.do(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product deleted successfully.", env.Message)

	resp, _ = server.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
