package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecosistens/nexusshop-backend/api/controllers"
	"github.com/ecosistens/nexusshop-backend/api/middleware"
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
	"github.com/ecosistens/nexusshop-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Optional
// integrations (cache) may be nil.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics
	Prom    prometheus.Gatherer

	Cache *redis.Client

	Catalog *catalog.Store
	Cart    *cart.Store

	Lookup  lookup.Service
	Advisor advisor.Service

	Clients       clients.Service
	Suppliers     suppliers.Service
	Team          team.Service
	Inventory     inventory.Service
	Checklists    checklists.Service
	ServiceOrders serviceorders.Service
	Contracts     contracts.Service
	Sales         sales.Service
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
	)

	var cachePinger redis.Pinger
	if d.Cache != nil {
		cachePinger = d.Cache
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cachePinger))
	})

	if d.Prom != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Prom, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", controllers.CatalogCategories(d.Catalog))
			r.Get("/brands", controllers.CatalogBrands(d.Catalog))
			r.Get("/products", controllers.CatalogProducts(d.Catalog, logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(d.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(d.Cart))
			r.Post("/items", controllers.CartAddItem(d.Cart, d.Catalog, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(d.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(d.Cart))
			r.Put("/drawer", controllers.CartDrawer(d.Cart, logg))
		})

		r.Route("/lookup", func(r chi.Router) {
			r.Post("/address", controllers.LookupAddress(d.Lookup, logg))
			r.Post("/company", controllers.LookupCompany(d.Lookup, logg))
		})

		r.Post("/advisor", controllers.Advisor(d.Advisor, d.Catalog, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Route("/clients", func(r chi.Router) {
				r.Get("/", controllers.AdminClientsList(d.Clients, logg))
				r.Post("/", controllers.AdminClientsCreate(d.Clients, logg))
				r.Get("/{clientId}", controllers.AdminClientsGet(d.Clients, logg))
				r.Put("/{clientId}", controllers.AdminClientsUpdate(d.Clients, logg))
				r.Delete("/{clientId}", controllers.AdminClientsDelete(d.Clients, logg))
				r.Post("/{clientId}/addresses", controllers.AdminClientsAddAddress(d.Clients, logg))
				r.Delete("/{clientId}/addresses/{addressIndex}", controllers.AdminClientsRemoveAddress(d.Clients, logg))
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", controllers.AdminSuppliersList(d.Suppliers, logg))
				r.Post("/", controllers.AdminSuppliersCreate(d.Suppliers, logg))
				r.Get("/{supplierId}", controllers.AdminSuppliersGet(d.Suppliers, logg))
				r.Put("/{supplierId}", controllers.AdminSuppliersUpdate(d.Suppliers, logg))
				r.Delete("/{supplierId}", controllers.AdminSuppliersDelete(d.Suppliers, logg))
				r.Post("/{supplierId}/addresses", controllers.AdminSuppliersAddAddress(d.Suppliers, logg))
				r.Delete("/{supplierId}/addresses/{addressIndex}", controllers.AdminSuppliersRemoveAddress(d.Suppliers, logg))
			})

			r.Route("/team", func(r chi.Router) {
				r.Route("/members", func(r chi.Router) {
					r.Get("/", controllers.AdminTeamMembersList(d.Team, logg))
					r.Post("/", controllers.AdminTeamMembersCreate(d.Team, logg))
					r.Put("/{memberId}", controllers.AdminTeamMembersUpdate(d.Team, logg))
					r.Delete("/{memberId}", controllers.AdminTeamMembersDelete(d.Team, logg))
					r.Post("/{memberId}/addresses", controllers.AdminTeamMembersAddAddress(d.Team, logg))
					r.Delete("/{memberId}/addresses/{addressIndex}", controllers.AdminTeamMembersRemoveAddress(d.Team, logg))
				})
				r.Route("/collaborators", func(r chi.Router) {
					r.Get("/", controllers.AdminCollaboratorsList(d.Team, logg))
					r.Post("/", controllers.AdminCollaboratorsCreate(d.Team, logg))
					r.Put("/{collaboratorId}", controllers.AdminCollaboratorsUpdate(d.Team, logg))
					r.Delete("/{collaboratorId}", controllers.AdminCollaboratorsDelete(d.Team, logg))
					r.Post("/{collaboratorId}/addresses", controllers.AdminCollaboratorsAddAddress(d.Team, logg))
					r.Delete("/{collaboratorId}/addresses/{addressIndex}", controllers.AdminCollaboratorsRemoveAddress(d.Team, logg))
				})
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminProductsList(d.Inventory, logg))
				r.Post("/", controllers.AdminProductsCreate(d.Inventory, logg))
				r.Get("/{productId}", controllers.AdminProductsGet(d.Inventory, logg))
				r.Put("/{productId}", controllers.AdminProductsUpdate(d.Inventory, logg))
				r.Delete("/{productId}", controllers.AdminProductsDelete(d.Inventory, logg))
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", controllers.AdminServicesList(d.Inventory, logg))
				r.Post("/", controllers.AdminServicesCreate(d.Inventory, logg))
				r.Get("/{serviceId}", controllers.AdminServicesGet(d.Inventory, logg))
				r.Put("/{serviceId}", controllers.AdminServicesUpdate(d.Inventory, logg))
				r.Delete("/{serviceId}", controllers.AdminServicesDelete(d.Inventory, logg))
			})

			r.Route("/checklists", func(r chi.Router) {
				r.Get("/", controllers.AdminChecklistsList(d.Checklists, logg))
				r.Post("/", controllers.AdminChecklistsCreate(d.Checklists, logg))
				r.Get("/{checklistId}", controllers.AdminChecklistsGet(d.Checklists, logg))
				r.Put("/{checklistId}", controllers.AdminChecklistsUpdate(d.Checklists, logg))
				r.Delete("/{checklistId}", controllers.AdminChecklistsDelete(d.Checklists, logg))
				r.Route("/{checklistId}/items", func(r chi.Router) {
					r.Post("/", controllers.AdminChecklistItemsAdd(d.Checklists, logg))
					r.Put("/{itemId}", controllers.AdminChecklistItemsUpdate(d.Checklists, logg))
					r.Post("/{itemId}/move", controllers.AdminChecklistItemsMove(d.Checklists, logg))
					r.Delete("/{itemId}", controllers.AdminChecklistItemsRemove(d.Checklists, logg))
				})
			})

			r.Route("/service-orders", func(r chi.Router) {
				r.Get("/", controllers.AdminServiceOrdersList(d.ServiceOrders, logg))
				r.Post("/", controllers.AdminServiceOrdersCreate(d.ServiceOrders, logg))
				r.Get("/{orderId}", controllers.AdminServiceOrdersGet(d.ServiceOrders, logg))
				r.Put("/{orderId}", controllers.AdminServiceOrdersUpdate(d.ServiceOrders, logg))
				r.Delete("/{orderId}", controllers.AdminServiceOrdersDelete(d.ServiceOrders, logg))
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", controllers.AdminContractsList(d.Contracts, logg))
				r.Post("/", controllers.AdminContractsCreate(d.Contracts, logg))
				r.Post("/import", controllers.AdminContractsImport(d.Contracts, logg))
				r.Get("/{contractId}", controllers.AdminContractsGet(d.Contracts, logg))
				r.Put("/{contractId}", controllers.AdminContractsUpdate(d.Contracts, logg))
				r.Delete("/{contractId}", controllers.AdminContractsDelete(d.Contracts, logg))
				r.Post("/{contractId}/edits", controllers.AdminContractsApplyEdits(d.Contracts, logg))
			})

			r.Get("/dashboard", controllers.AdminDashboard(d.Sales))
		})
	})

	return r
}
