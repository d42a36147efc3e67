package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/cart"
	"zonos-storefront/internal/domain"
)

type stubCartReader struct {
	cart  *domain.Cart
	err   error
	calls int
}

func (s *stubCartReader) GetCart(_ context.Context, ids cart.IDStore) (*domain.Cart, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if ids.Get() == "" {
		return nil, nil
	}
	return s.cart, nil
}

type stubActions struct {
	addMsg    string
	removeMsg string
	updateMsg string

	addedSKU  string
	addedQty  int
	removedID string

	checkoutErr error
	createdID   string
	createErr   error
	createCalls int
}

func (s *stubActions) AddItem(_ context.Context, _ cart.IDStore, sku string, quantity int) string {
	s.addedSKU = sku
	s.addedQty = quantity
	return s.addMsg
}

func (s *stubActions) RemoveItem(_ context.Context, _ cart.IDStore, itemID string) string {
	s.removedID = itemID
	return s.removeMsg
}

func (s *stubActions) UpdateItemQuantity(_ context.Context, _ cart.IDStore, sku string, quantity int) string {
	s.addedSKU = sku
	s.addedQty = quantity
	return s.updateMsg
}

func (s *stubActions) RedirectToCheckout(_ context.Context, _ cart.IDStore) (string, error) {
	if s.checkoutErr != nil {
		return "", s.checkoutErr
	}
	return "/checkout", nil
}

func (s *stubActions) CreateCartAndSetCookie(_ context.Context, ids cart.IDStore) (string, error) {
	s.createCalls++
	if s.createErr != nil {
		return "", s.createErr
	}
	ids.Set(s.createdID)
	return s.createdID, nil
}

type stubCatalog struct {
	products []domain.Product
	err      error
}

func (s *stubCatalog) Products(context.Context, string, string, bool) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) Product(context.Context, string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.products) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.products[0], nil
}

func (s *stubCatalog) Recommendations(context.Context, string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) Collections(context.Context) ([]domain.Collection, error) {
	return nil, s.err
}

func (s *stubCatalog) Collection(context.Context, string) (*domain.Collection, error) {
	return nil, domain.ErrNotFound
}

func (s *stubCatalog) CollectionProducts(context.Context, string, string, bool) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) Menu(context.Context, string) ([]domain.MenuItem, error) {
	return []domain.MenuItem{{Title: "All", Path: "/search"}}, s.err
}

func (s *stubCatalog) Pages(context.Context) ([]domain.Page, error) {
	return nil, s.err
}

func (s *stubCatalog) Page(context.Context, string) (*domain.Page, error) {
	return nil, domain.ErrNotFound
}

func testDeps() Deps {
	return Deps{
		Cart:      &stubCartReader{},
		Actions:   &stubActions{},
		Catalog:   &stubCatalog{},
		Cache:     NewTagCache(),
		CookieTTL: time.Hour,
	}
}

func newTestRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return buildRouter(logger, nil, deps)
}

func TestGetCart_NoCookieReturnsEmptyCart(t *testing.T) {
	deps := testDeps()
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got domain.Cart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.ID != "" || got.TotalQuantity != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
	if got.Cost.TotalAmount.Amount != "0.00" {
		t.Fatalf("expected zero total, got %q", got.Cost.TotalAmount.Amount)
	}
}

func TestGetCart_SecondReadServedFromCache(t *testing.T) {
	deps := testDeps()
	reader := &stubCartReader{cart: &domain.Cart{ID: "cart-1", TotalQuantity: 2}}
	deps.Cart = reader
	router := newTestRouter(deps)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: "cartId", Value: "cart-1"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	}

	if reader.calls != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", reader.calls)
	}
}

func TestGetCart_VendorErrorReturnsBadGateway(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartReader{err: errors.New("boom")}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cartId", Value: "cart-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}

func TestAddItem_Success(t *testing.T) {
	deps := testDeps()
	actions := &stubActions{}
	deps.Actions = actions
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"sku":"variant-1-1","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if actions.addedSKU != "variant-1-1" || actions.addedQty != 2 {
		t.Fatalf("expected sku variant-1-1 qty 2, got %q qty %d", actions.addedSKU, actions.addedQty)
	}
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	deps := testDeps()
	actions := &stubActions{}
	deps.Actions = actions
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"sku":"variant-1-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if actions.addedQty != 1 {
		t.Fatalf("expected quantity default 1, got %d", actions.addedQty)
	}
}

func TestAddItem_ActionFailureReturnsMessage(t *testing.T) {
	deps := testDeps()
	deps.Actions = &stubActions{addMsg: "Error adding item to cart"}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"sku":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] != "Error adding item to cart" {
		t.Fatalf("expected action message, got %q", body["message"])
	}
}

func TestAddItem_InvalidBody(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateItem_RejectsNegativeQuantity(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodPut, "/api/cart/items", strings.NewReader(`{"sku":"variant-1-1","quantity":-1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRemoveItem_PassesPathID(t *testing.T) {
	deps := testDeps()
	actions := &stubActions{}
	deps.Actions = actions
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/item-42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if actions.removedID != "item-42" {
		t.Fatalf("expected item-42, got %q", actions.removedID)
	}
}

func TestCheckout_RedirectsSeeOther(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/checkout" {
		t.Fatalf("expected redirect to /checkout, got %q", loc)
	}
}

func TestGetCartID_CreatesCartAndSetsCookie(t *testing.T) {
	deps := testDeps()
	actions := &stubActions{createdID: "cart-new"}
	deps.Actions = actions
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/get-cart-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["cartId"] != "cart-new" {
		t.Fatalf("expected cart-new, got %q", body["cartId"])
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "cartId=cart-new") {
		t.Fatalf("expected cartId cookie, got %q", cookie)
	}
}

func TestGetCartID_ReturnsExistingWithoutCreate(t *testing.T) {
	deps := testDeps()
	actions := &stubActions{createdID: "cart-new"}
	deps.Actions = actions
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/get-cart-id", nil)
	req.AddCookie(&http.Cookie{Name: "cartId", Value: "cart-old"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["cartId"] != "cart-old" {
		t.Fatalf("expected cart-old, got %q", body["cartId"])
	}
	if actions.createCalls != 0 {
		t.Fatalf("expected no cart creation, got %d calls", actions.createCalls)
	}
}

func TestRevalidate_SecretChecked(t *testing.T) {
	deps := testDeps()
	deps.RevalidationSecret = "s3cret"
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodPost, "/api/revalidate?secret=wrong", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/zonos/revalidate?secret=s3cret", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["revalidated"] != true {
		t.Fatalf("expected revalidated true, got %v", body["revalidated"])
	}
}

func TestPreview_AppliesAction(t *testing.T) {
	router := newTestRouter(testDeps())

	payload := `{
		"cart": {
			"id": "cart-1",
			"items": [
				{"id": "item-1", "sku": "variant-1-1", "quantity": 1, "amount": 10.00, "currencyCode": "USD"}
			]
		},
		"action": {"type": "UPDATE_ITEM", "sku": "variant-1-1", "updateType": "plus"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/preview", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got domain.Cart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.TotalQuantity != 2 {
		t.Fatalf("expected total quantity 2, got %d", got.TotalQuantity)
	}
	if got.Cost.TotalAmount.Amount != "20.00" {
		t.Fatalf("expected total 20.00, got %q", got.Cost.TotalAmount.Amount)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListProducts_ReturnsProducts(t *testing.T) {
	deps := testDeps()
	deps.Catalog = &stubCatalog{products: []domain.Product{{ID: "product-1", Handle: "classic-t-shirt", Title: "Classic T-Shirt"}}}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/products?q=shirt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Products) != 1 || body.Products[0].Handle != "classic-t-shirt" {
		t.Fatalf("unexpected products: %+v", body.Products)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
