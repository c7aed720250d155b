package controllers

import (
	"net/http"

	"github.com/ecosistens/nexusshop-backend/api/responses"
	"github.com/ecosistens/nexusshop-backend/api/validators"
	"github.com/ecosistens/nexusshop-backend/internal/advisor"
	"github.com/ecosistens/nexusshop-backend/internal/catalog"
	pkgerrors "github.com/ecosistens/nexusshop-backend/pkg/errors"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
)

type advisorRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Question  string `json:"question" validate:"required"`
}

type advisorResponse struct {
	Answer     string `json:"answer"`
	Configured bool   `json:"configured"`
}

// Advisor answers a shopper question about a product. The endpoint
// succeeds even when the model is unreachable; the answer is then one
// of the fixed fallback messages.
func Advisor(svc advisor.Service, products *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload advisorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := products.ProductByID(payload.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		answer := svc.Advise(r.Context(), product, payload.Question)
		responses.WriteSuccess(w, advisorResponse{Answer: answer, Configured: svc.Configured()})
	}
}
