package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gadgetverse-backend/internal/product/domain"
	"gadgetverse-backend/internal/product/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductUsecase struct {
	listOut []domain.Product
	listErr error

	recentOut []domain.Product
	recentErr error

	getOut domain.Product
	getErr error

	createOut *dto.InsertResult
	createErr error

	deleteErr error
}

func (f *fakeProductUsecase) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	return f.listOut, f.listErr
}

func (f *fakeProductUsecase) Recent(ctx context.Context) ([]domain.Product, error) {
	return f.recentOut, f.recentErr
}

func (f *fakeProductUsecase) GetByID(ctx context.Context, id string) (domain.Product, error) {
	return f.getOut, f.getErr
}

func (f *fakeProductUsecase) Create(ctx context.Context, product domain.Product) (*dto.InsertResult, error) {
	return f.createOut, f.createErr
}

func (f *fakeProductUsecase) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func newProductRouter(uc *fakeProductUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewProductHandler(uc, zerolog.Nop())

	r := gin.New()
	r.GET("/api/products", handler.List)
	r.GET("/api/products/recent", handler.Recent)
	r.GET("/api/products/:id", handler.GetByID)
	r.POST("/api/products", handler.Create)
	r.DELETE("/api/products/:id", handler.Delete)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestListHandler(t *testing.T) {
	t.Run("empty result is an array, not null", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{listOut: []domain.Product{}})
		w := do(t, r, http.MethodGet, "/api/products?category=phones&search=pro", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("store failure", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{listErr: errors.New("boom")})
		w := do(t, r, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch products", errorMessage(t, w))
	})
}

func TestRecentHandler(t *testing.T) {
	r := newProductRouter(&fakeProductUsecase{recentOut: []domain.Product{
		{"title": "newest"},
		{"title": "older"},
	}})
	w := do(t, r, http.MethodGet, "/api/products/recent", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	t.Run("store failure", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{recentErr: errors.New("boom")})
		w := do(t, r, http.MethodGet, "/api/products/recent", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch recent products", errorMessage(t, w))
	})
}

func TestGetByIDHandler(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{getErr: domain.ErrInvalidProductID})
		w := do(t, r, http.MethodGet, "/api/products/not-hex", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid product id", errorMessage(t, w))
	})

	t.Run("not found", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{getErr: domain.ErrProductNotFound})
		w := do(t, r, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", errorMessage(t, w))
	})

	t.Run("found", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{getOut: domain.Product{"title": "iPhone 15 Pro"}})
		w := do(t, r, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "iPhone 15 Pro", body["title"])
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("returns the insertion acknowledgment", func(t *testing.T) {
		id := primitive.NewObjectID()
		r := newProductRouter(&fakeProductUsecase{createOut: &dto.InsertResult{Acknowledged: true, InsertedID: id}})
		w := do(t, r, http.MethodPost, "/api/products", `{"title":"Pixel 9","category":"phones","price":999}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["acknowledged"])
		assert.Equal(t, id.Hex(), body["insertedId"])
	})

	t.Run("malformed body gets a fixed message", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{})
		w := do(t, r, http.MethodPost, "/api/products", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", errorMessage(t, w))
	})

	t.Run("store failure", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{createErr: errors.New("boom")})
		w := do(t, r, http.MethodPost, "/api/products", `{"title":"x"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to add product", errorMessage(t, w))
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{deleteErr: domain.ErrProductNotFound})
		w := do(t, r, http.MethodDelete, "/api/products/"+primitive.NewObjectID().Hex(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", errorMessage(t, w))
	})

	t.Run("malformed id", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{deleteErr: domain.ErrInvalidProductID})
		w := do(t, r, http.MethodDelete, "/api/products/zzz", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid product id", errorMessage(t, w))
	})

	t.Run("deleted", func(t *testing.T) {
		r := newProductRouter(&fakeProductUsecase{})
		w := do(t, r, http.MethodDelete, "/api/products/"+primitive.NewObjectID().Hex(), "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Product deleted successfully", body["message"])
	})
}
