package api

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/api/handlers"
	"plexconsole/internal/api/middleware"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/auth"
)

type Dependencies struct {
	AuthHandler       *handlers.AuthHandler
	PlexConfigHandler *handlers.PlexConfigHandler
	LoginAppHandler   *handlers.LoginAppHandler
	ElementsHandler   *handlers.ElementsHandler
	PageParamsHandler *handlers.PageParamsHandler
	KeysHandler       *handlers.KeysHandler
	LogoHandler       *handlers.LogoHandler
	AuditHandler      *handlers.AuditHandler
	HealthHandler     *handlers.HealthHandler
	MetricsHandler    *handlers.MetricsHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenantMiddleware  *middleware.TenantMiddleware
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	router.GET("/healthz", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	// Operator authentication
	router.POST("/api/auth/login", wrap(deps.AuthHandler.Login))
	router.POST("/api/auth/refresh", wrap(deps.AuthHandler.Refresh))

	authMid := deps.AuthMiddleware
	tenantMid := deps.TenantMiddleware

	readChain := func(h http.HandlerFunc) httprouter.Handle {
		return chain(h, authMid.Handle, tenantMid.Handle, middleware.RateLimit("api_read"))
	}
	writeChain := func(h http.HandlerFunc) httprouter.Handle {
		return chain(h, authMid.Handle, tenantMid.Handle, middleware.RateLimit("api_write"))
	}

	// Tenant plex configuration
	router.GET("/api/tenants/:tenant_id/plexconfig", readChain(deps.PlexConfigHandler.Get))
	router.POST("/api/tenants/:tenant_id/plexconfig", writeChain(deps.PlexConfigHandler.Save))

	// Login apps
	router.POST("/api/tenants/:tenant_id/loginapps", writeChain(deps.LoginAppHandler.Create))
	router.DELETE("/api/tenants/:tenant_id/loginapps/:app_id", writeChain(deps.LoginAppHandler.Delete))
	router.POST("/api/tenants/:tenant_id/loginapps/actions/samlidp", writeChain(deps.LoginAppHandler.EnableSAMLIDP))

	// Message templates
	router.GET("/api/tenants/:tenant_id/emailelements", readChain(deps.ElementsHandler.GetEmail))
	router.POST("/api/tenants/:tenant_id/emailelements", writeChain(deps.ElementsHandler.SaveEmail))
	router.GET("/api/tenants/:tenant_id/smselements", readChain(deps.ElementsHandler.GetSMS))
	router.POST("/api/tenants/:tenant_id/smselements", writeChain(deps.ElementsHandler.SaveSMS))

	// Page parameters
	router.GET("/api/tenants/:tenant_id/apppageparameters/:app_id", readChain(deps.PageParamsHandler.Get))
	router.PUT("/api/tenants/:tenant_id/apppageparameters/:app_id", writeChain(deps.PageParamsHandler.Save))

	// Logo uploads
	router.POST("/api/tenants/:tenant_id/uploadlogo",
		chain(deps.LogoHandler.Upload, authMid.Handle, tenantMid.Handle, middleware.RateLimit("upload")))

	// Signing keys
	router.GET("/api/tenants/:tenant_id/keys", readChain(deps.KeysHandler.List))
	router.PUT("/api/tenants/:tenant_id/keys/actions/rotate",
		chain(deps.KeysHandler.Rotate, authMid.Handle, tenantMid.Handle, middleware.RateLimit("api_write"), requireRole("admin")))
	router.GET("/api/tenants/:tenant_id/keys/private",
		chain(deps.KeysHandler.Private, authMid.Handle, tenantMid.Handle, middleware.RateLimit("api_read"), requireRole("admin")))

	// Audit log
	router.GET("/api/tenants/:tenant_id/auditlogs", readChain(deps.AuditHandler.List))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// Inject params into context
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}

func requireRole(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims := r.Context().Value(apiContext.Claims).(*auth.Claims)

			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				errors.WriteError(w, http.StatusForbidden, errors.ErrCodeForbidden, "Insufficient permissions", nil)
				return
			}

			next(w, r)
		}
	}
}
