package controllers

import (
	"net/http"

	"github.com/motorhaus-io/motorhaus-backend/api/responses"
	"github.com/motorhaus-io/motorhaus-backend/api/validators"
	"github.com/motorhaus-io/motorhaus-backend/internal/auth"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
)

// AuthLogin handles credential login and returns the minted access token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Login(ctx, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
