package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ecosistens/nexusshop-backend/internal/cart"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
)

func decodeCart(t *testing.T, resp *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItemSuccess(t *testing.T) {
	products := catalog.Seed()
	store := cart.NewStore()
	handler := CartAddItem(store, products, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p1"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeCart(t, resp)
	if data.ItemCount != 1 {
		t.Fatalf("expected one item got %d", data.ItemCount)
	}
	if data.Note == "" {
		t.Fatal("expected checkout note on every snapshot")
	}
}

func TestCartAddItemRepeatIncrements(t *testing.T) {
	products := catalog.Seed()
	store := cart.NewStore()
	handler := CartAddItem(store, products, nil)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p1"}`))
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("add %d: expected 200 got %d", i, resp.Code)
		}
	}

	snap := store.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("expected a single row got %d", len(snap.Items))
	}
	if snap.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 got %d", snap.Items[0].Quantity)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	handler := CartAddItem(cart.NewStore(), catalog.Seed(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"nope"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsUnknownFields(t *testing.T) {
	handler := CartAddItem(cart.NewStore(), catalog.Seed(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p1","qty":2}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemZeroRemoves(t *testing.T) {
	products := catalog.Seed()
	store := cart.NewStore()
	product, _ := products.ProductByID("p1")
	store.Add(product)

	handler := CartUpdateItem(store, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", "p1")
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"quantity":0}`))
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeCart(t, resp)
	if len(data.Items) != 0 {
		t.Fatalf("expected empty cart got %d rows", len(data.Items))
	}
}

func TestCartDrawerTogglesOpen(t *testing.T) {
	store := cart.NewStore()
	handler := CartDrawer(store, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/drawer", strings.NewReader(`{"open":true}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if data := decodeCart(t, resp); !data.Open {
		t.Fatal("expected drawer open")
	}
}
