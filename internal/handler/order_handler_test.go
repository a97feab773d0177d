package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"stockbook/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context) ([]model.OrderRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRow), args.Error(1)
}

func (m *MockOrderService) FormData(ctx context.Context) (*model.OrderFormData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderFormData), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, form model.OrderForm) (*model.Order, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func TestOrderHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testRows := []model.OrderRow{
		{ID: 1, ClientName: "Ana", ProductName: "Cable", Quantity: 3, TotalPrice: 9.0, OrderDate: "2024-01-01"},
	}

	mockService := new(MockOrderService)
	mockService.On("List", mock.Anything).Return(testRows, nil)

	h := NewOrderHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "Cable")
	assert.Contains(t, body, "9.00")
	assert.Contains(t, body, "2024-01-01")
}

func TestOrderHandler_AddForm(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("FormData", mock.Anything).Return(&model.OrderFormData{
		Clients:  []model.Client{{ID: 1, Name: "Ana"}},
		Products: []model.Product{{ID: 2, Name: "Cable", Price: 3.0}},
	}, nil)

	h := NewOrderHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := httptest.NewRequest(http.MethodGet, "/add_order", nil)
	rec := httptest.NewRecorder()

	h.AddForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="client_id"`)
	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "Cable")
}

func TestOrderHandler_Add_Success(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("Create", mock.Anything, model.OrderForm{
		ClientID:  "1",
		ProductID: "2",
		Quantity:  "3",
		OrderDate: "2024-01-01",
	}).Return(&model.Order{ID: 42, TotalPrice: 9.0}, nil)

	h := NewOrderHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_order", url.Values{
		"client_id":  {"1"},
		"product_id": {"2"},
		"quantity":   {"3"},
		"order_date": {"2024-01-01"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))
	mockService.AssertExpectations(t)
}

func TestOrderHandler_Add_MissingOrderDate(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("model.OrderForm")).
		Return(nil, model.NewMissingFieldError("order_date"))

	h := NewOrderHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_order", url.Values{
		"client_id":  {"1"},
		"product_id": {"2"},
		"quantity":   {"3"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/add_order", rec.Header().Get("Location"))
}

func TestOrderHandler_Add_ProductNotFound(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("model.OrderForm")).
		Return(nil, model.ErrProductNotFound)

	h := NewOrderHandler(mockService, newTestRenderer(t), newTestFlashes(), logger)

	req := postForm("/add_order", url.Values{
		"client_id":  {"1"},
		"product_id": {"999"},
		"quantity":   {"3"},
		"order_date": {"2024-01-01"},
	})
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/add_order", rec.Header().Get("Location"))
}
