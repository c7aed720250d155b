package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ecosistens/nexusshop-backend/internal/advisor"
	"github.com/ecosistens/nexusshop-backend/internal/cart"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	"github.com/ecosistens/nexusshop-backend/internal/checklists"
	"github.com/ecosistens/nexusshop-backend/internal/clients"
	"github.com/ecosistens/nexusshop-backend/internal/contracts"
	"github.com/ecosistens/nexusshop-backend/internal/inventory"
	"github.com/ecosistens/nexusshop-backend/internal/lookup"
	"github.com/ecosistens/nexusshop-backend/internal/sales"
	"github.com/ecosistens/nexusshop-backend/internal/serviceorders"
	"github.com/ecosistens/nexusshop-backend/internal/suppliers"
	"github.com/ecosistens/nexusshop-backend/internal/team"
	"github.com/ecosistens/nexusshop-backend/pkg/config"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
	"github.com/ecosistens/nexusshop-backend/pkg/metrics"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalogStore := catalog.Seed()
	clientsSvc := clients.NewService()
	checklistsSvc := checklists.NewService()
	salesSvc := sales.NewService(catalogStore)
	sales.Seed(salesSvc, time.Now())

	reg := prometheus.NewRegistry()

	return NewRouter(Deps{
		Config:  &config.Config{App: config.AppConfig{Env: "dev"}},
		Logger:  logger.New(logger.Options{ServiceName: "test"}),
		Metrics: metrics.NewHTTPMetrics(reg),
		Prom:    reg,

		Catalog: catalogStore,
		Cart:    cart.NewStore(),

		Lookup:  lookup.NewService(nil, nil, nil, 0, nil),
		Advisor: advisor.NewService(nil, nil),

		Clients:       clientsSvc,
		Suppliers:     suppliers.NewService(),
		Team:          team.NewService(),
		Inventory:     inventory.NewService(),
		Checklists:    checklistsSvc,
		ServiceOrders: serviceorders.NewService(clientsSvc, checklistsSvc),
		Contracts:     contracts.NewService(),
		Sales:         salesSvc,
	})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterStorefrontFlow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?category=eletronicos", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("catalog list: expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p1"}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("cart add: expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("cart get: expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if envelope.Data.ItemCount != 1 {
		t.Fatalf("expected one item got %d", envelope.Data.ItemCount)
	}
}

func TestRouterAdminCrudFlow(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Maria Souza","contact":"11 99999-0000","email":"maria@example.com","cpf":"390.533.447-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/clients/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("client create: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode client: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("expected generated client id")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/clients/"+created.Data.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("client get: expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200 got %d", resp.Code)
	}
}
