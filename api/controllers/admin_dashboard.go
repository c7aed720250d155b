package controllers

import (
	"net/http"

	"github.com/ecosistens/nexusshop-backend/api/responses"
	"github.com/ecosistens/nexusshop-backend/internal/sales"
)

func AdminDashboard(svc sales.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Dashboard(r.Context()))
	}
}
