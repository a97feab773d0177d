package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"stockbook/internal/flash"
	"stockbook/internal/model"
	"stockbook/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, form model.ProductForm) (*model.Product, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// newTestRenderer parses the embedded templates for handler tests.
func newTestRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	return renderer
}

func newTestFlashes() *flash.Store {
	return flash.NewStore("test-secret")
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: 1, Name: "Cable", Description: "2m cable", Quantity: 10, Price: 3.0},
	}

	mockService := new(MockProductService)
	mockService.On("List", mock.Anything).Return(testProducts, nil)

	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cable")
	assert.Contains(t, rec.Body.String(), "3.00")
	mockService.AssertExpectations(t)
}

func TestProductHandler_List_ServiceError(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProductHandler_AddForm(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := httptest.NewRequest(http.MethodGet, "/add_product", nil)
	rec := httptest.NewRecorder()

	h.AddForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/add_product"`)
}

func TestProductHandler_Add_Success(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, model.ProductForm{
		Name:        "Cable",
		Description: "2m cable",
		Quantity:    "10",
		Price:       "3.0",
	}).Return(&model.Product{ID: 1, Name: "Cable"}, nil)

	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_product", url.Values{
		"name":        {"Cable"},
		"description": {"2m cable"},
		"quantity":    {"10"},
		"price":       {"3.0"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/inventory", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "flash message should set the session cookie")
	mockService.AssertExpectations(t)
}

func TestProductHandler_Add_MissingField(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("model.ProductForm")).
		Return(nil, model.NewMissingFieldError("name"))

	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_product", url.Values{
		"quantity": {"10"},
		"price":    {"3.0"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	// validation failures go back to the form, not to the list
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/add_product", rec.Header().Get("Location"))
}

func TestProductHandler_Add_StorageError(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("model.ProductForm")).
		Return(nil, errors.New("connection refused"))

	h := NewProductHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_product", url.Values{
		"name":     {"Cable"},
		"quantity": {"10"},
		"price":    {"3.0"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
