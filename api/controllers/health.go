package controllers

import (
	"net/http"

	"github.com/ecosistens/nexusshop-backend/api/responses"
	"github.com/ecosistens/nexusshop-backend/pkg/config"
	"github.com/ecosistens/nexusshop-backend/pkg/logger"
	"github.com/ecosistens/nexusshop-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NexusShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports degraded instead of failing when the optional
// cache is down; lookups still work without it.
func HealthReady(cfg *config.Config, logg *logger.Logger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NexusShop-Env", cfg.App.Env)

		status := map[string]string{"status": "ready"}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "redis ping failed: "+err.Error())
				}
				status["cache"] = "unavailable"
			} else {
				status["cache"] = "ok"
			}
		}
		responses.WriteSuccess(w, status)
	}
}
