package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afyalink/internal/domain/entity"
	usecasemocks "afyalink/internal/mocks/usecase"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_Checkout(t *testing.T) {
	userID := uuid.New()
	uc := usecasemocks.NewMockOrderUsecase(t)
	uc.EXPECT().
		Checkout(mock.Anything, userID, mock.MatchedBy(func(input usecase.CheckoutInput) bool {
			return input.PaymentMethod == entity.PaymentMethodCashOnDelivery
		})).
		Return(&entity.Order{ID: "order-1", UserID: userID, TotalCents: 2048, Status: entity.OrderStatusPending}, nil)

	handler := NewOrderHandler(uc, slog.Default())

	body := `{"payment_method":"Cash on Delivery","shipping_address":{"full_name":"Jane","address":"1 Moi Ave","phone":"0712345678"}}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/orders", body)
	c.Set("userID", userID)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "order-1")
	assert.Contains(t, rec.Body.String(), `"total_cents":2048`)
}

func TestOrderHandler_Checkout_MissingIdentity(t *testing.T) {
	uc := usecasemocks.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	c, rec := newOrderTestContext(t, http.MethodPost, "/orders", `{"payment_method":"Cash on Delivery"}`)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Checkout")
}

func TestOrderHandler_GetReceipt_ServesPNG(t *testing.T) {
	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	uc := usecasemocks.NewMockOrderUsecase(t)
	uc.EXPECT().
		GenerateReceipt(mock.Anything, userID, false, "order-1").
		Return(png, nil)

	handler := NewOrderHandler(uc, slog.Default())

	c, rec := newOrderTestContext(t, http.MethodGet, "/orders/order-1/receipt", "")
	c.SetParamNames("id")
	c.SetParamValues("order-1")
	c.Set("userID", userID)

	require.NoError(t, handler.GetReceipt(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_ListRecentOrders_BadLimit(t *testing.T) {
	uc := usecasemocks.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	c, rec := newOrderTestContext(t, http.MethodGet, "/admin/orders?limit=lots", "")

	require.NoError(t, handler.ListRecentOrders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListRecentOrders")
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	uc := usecasemocks.NewMockOrderUsecase(t)
	uc.EXPECT().
		UpdateOrderStatus(mock.Anything, "order-1", entity.OrderStatusProcessing).
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusProcessing}, nil)

	handler := NewOrderHandler(uc, slog.Default())

	c, rec := newOrderTestContext(t, http.MethodPut, "/admin/orders/order-1/status", `{"status":"Processing"}`)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Processing"`)
}
