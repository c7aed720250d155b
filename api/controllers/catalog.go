package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecosistens/nexusshop-backend/api/responses"
	"github.com/ecosistens/nexusshop-backend/api/validators"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
)

func CatalogCategories(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Categories())
	}
}

func CatalogBrands(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Brands())
	}
}

// CatalogProducts lists the storefront grid. Filters combine with AND:
// category slug, free-text query and inclusive price bounds.
func CatalogProducts(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minPrice, err := validators.ParseQueryDecimal(r, "min_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryDecimal(r, "max_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := store.Filter(catalog.FilterInput{
			CategorySlug: r.URL.Query().Get("category"),
			Query:        r.URL.Query().Get("q"),
			MinPrice:     minPrice,
			MaxPrice:     maxPrice,
		})
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"total":    len(products),
		})
	}
}

type productDetailResponse struct {
	catalog.Product
	BrandName       string `json:"brand_name"`
	CategoryName    string `json:"category_name"`
	SubCategoryName string `json:"sub_category_name"`
}

// CatalogProduct returns one product with its display names resolved.
// Dangling brand or category references render as blank labels, the
// same way the product card degrades.
func CatalogProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		product, ok := store.ProductByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, productDetailResponse{
			Product:         product,
			BrandName:       store.BrandName(product.BrandID),
			CategoryName:    store.CategoryName(product.CategoryID),
			SubCategoryName: store.SubCategoryName(product.CategoryID, product.SubCategoryID),
		})
	}
}
