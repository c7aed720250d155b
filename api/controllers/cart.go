package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecosistens/nexusshop-backend/api/responses"
	"github.com/ecosistens/nexusshop-backend/api/validators"
	"github.com/ecosistens/nexusshop-backend/internal/cart"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
)

// cartNote mirrors the fine print in the drawer footer. Checkout
// itself does not exist here.
const cartNote = "frete e impostos calculados no checkout"

type cartResponse struct {
	cart.Snapshot
	Note string `json:"note"`
}

func newCartResponse(snap cart.Snapshot) cartResponse {
	return cartResponse{Snapshot: snap, Note: cartNote}
}

func CartGet(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartResponse(store.Snapshot()))
	}
}

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartAddItem puts one unit of a catalog product in the cart. Stock
// is not checked.
func CartAddItem(store *cart.Store, products *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := products.ProductByID(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(store.Add(product)))
	}
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdateItem sets a row's quantity; zero or less removes the row.
func CartUpdateItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID := chi.URLParam(r, "productId")
		responses.WriteSuccess(w, newCartResponse(store.UpdateQuantity(productID, payload.Quantity)))
	}
}

func CartRemoveItem(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		responses.WriteSuccess(w, newCartResponse(store.Remove(productID)))
	}
}

type cartDrawerRequest struct {
	Open bool `json:"open"`
}

func CartDrawer(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartDrawerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(store.SetOpen(payload.Open)))
	}
}
