package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renteasy/internal/delivery/http/validator"
	"renteasy/internal/domain/service"
	"renteasy/internal/infra/payment"
	"renteasy/internal/infra/persistence/blob"
	"renteasy/internal/infra/qrcode"
	"renteasy/internal/store"
	"renteasy/internal/usecase"
	"renteasy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type silentNotifier struct{}

func (silentNotifier) Publish(context.Context, *service.StorefrontEvent) error { return nil }
func (silentNotifier) Close() error                                            { return nil }

type handlerFixture struct {
	echo    *echo.Echo
	catalog usecase.CatalogUsecase
	orders  usecase.OrderUsecase
}

// newHandlerFixture wires a real storefront stack against an in-memory
// mirror with no document store, so mutations take the fallback path.
func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	state := store.New()
	mirror := blob.NewWithBucket(bucket)

	catalog := impl.NewCatalogService(state, nil, mirror, silentNotifier{}, logger)
	orders := impl.NewOrderService(state, mirror, silentNotifier{}, qrcode.NewQRCodeService(256, "M"), logger)

	require.NoError(t, catalog.LoadProducts(context.Background()))

	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixture{echo: e, catalog: catalog, orders: orders}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func TestProductHandler_ListProducts(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &ProductHandler{catalogUC: fix.catalog, logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(fix.echo.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Study Table")
	assert.Contains(t, rec.Body.String(), `"loading":false`)
}

func TestProductHandler_CreateProduct_ReportsFallback(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &ProductHandler{catalogUC: fix.catalog, logger: slog.Default()}

	body := `{"name":"Bookshelf","category":"furniture","price":149,"available":true}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateProduct(fix.echo.NewContext(req, rec)))

	// No document store is wired, so the insert lands on the mirror.
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"usedFallback":true`)
	assert.Contains(t, rec.Body.String(), "Bookshelf")
}

func TestProductHandler_CreateProduct_RejectsInvalidInput(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &ProductHandler{catalogUC: fix.catalog, logger: slog.Default()}

	body := `{"name":"","category":"furniture","price":0}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateProduct(fix.echo.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &ProductHandler{catalogUC: fix.catalog, logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	rec := httptest.NewRecorder()
	c := fix.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func submitOrderBody(productID string) string {
	payload := map[string]any{
		"productId":     productID,
		"days":          3,
		"startDate":     "2099-01-15",
		"name":          "Asha Rao",
		"phone":         "9876543210",
		"email":         "asha@example.com",
		"address":       "14 MG Road",
		"city":          "Bengaluru",
		"pincode":       "560001",
		"paymentMethod": "razorpay",
	}
	raw, _ := json.Marshal(payload)

	return string(raw)
}

func TestOrderHandler_SubmitOrder(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &OrderHandler{
		orderUC:   fix.orders,
		catalogUC: fix.catalog,
		payment:   payment.NewSimulator(slog.Default()),
		logger:    slog.Default(),
	}

	products := fix.catalog.Products()
	require.NotEmpty(t, products)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(submitOrderBody(products[0].ID)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SubmitOrder(fix.echo.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	assert.Contains(t, rec.Body.String(), "demo_payment_")
	assert.Contains(t, rec.Body.String(), "14 MG Road, Bengaluru, 560001")

	current, err := fix.orders.CurrentOrder()
	require.NoError(t, err)
	assert.Equal(t, products[0].Price*3, current.Rental.TotalPrice)
}

func TestOrderHandler_SubmitOrder_RejectsBadPhone(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &OrderHandler{
		orderUC:   fix.orders,
		catalogUC: fix.catalog,
		payment:   payment.NewSimulator(slog.Default()),
		logger:    slog.Default(),
	}

	body := strings.Replace(submitOrderBody("1"), "9876543210", "1234567890", 1)
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SubmitOrder(fix.echo.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_CurrentOrder_NoneYet(t *testing.T) {
	fix := newHandlerFixture(t)
	h := &OrderHandler{orderUC: fix.orders, catalogUC: fix.catalog, logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/orders/current", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CurrentOrder(fix.echo.NewContext(req, rec)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
