package controllers

import (
	"net/http"

	"go.uber.org/multierr"

	"github.com/motorhaus-io/motorhaus-backend/api/responses"
	"github.com/motorhaus-io/motorhaus-backend/pkg/config"
	pkgdb "github.com/motorhaus-io/motorhaus-backend/pkg/db"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
	pkgredis "github.com/motorhaus-io/motorhaus-backend/pkg/redis"
)

const envHeader = "X-Motorhaus-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies that both backing stores answer before reporting ready.
func HealthReady(cfg *config.Config, store pkgdb.Pinger, cache pkgredis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var err error
		if store != nil {
			err = multierr.Append(err, store.Ping(r.Context()))
		}
		if cache != nil {
			err = multierr.Append(err, cache.Ping(r.Context()))
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
