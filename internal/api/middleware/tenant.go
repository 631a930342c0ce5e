package middleware

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/auth"
	"plexconsole/internal/platform/database"
	"plexconsole/internal/platform/repositories"
)

// TenantMiddleware resolves the tenant named by the tenant_id route
// parameter, checks that the authenticated operator belongs to its company,
// and attaches the tenant record and database handle to the context.
type TenantMiddleware struct {
	tenantRepo *repositories.TenantRepository
	dbPool     *database.TenantDBPool
}

func NewTenantMiddleware(tenantRepo *repositories.TenantRepository, dbPool *database.TenantDBPool) *TenantMiddleware {
	return &TenantMiddleware{
		tenantRepo: tenantRepo,
		dbPool:     dbPool,
	}
}

func (m *TenantMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(apiContext.Claims).(*auth.Claims)
		if !ok {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "No authentication claims found", nil)
			return
		}

		params, _ := r.Context().Value(apiContext.Params).(httprouter.Params)
		tenantID := params.ByName("tenant_id")
		if tenantID == "" {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Missing tenant id", nil)
			return
		}

		tenant, err := m.tenantRepo.GetByID(tenantID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load tenant", nil)
			return
		}
		if tenant == nil {
			errors.WriteError(w, http.StatusForbidden, errors.ErrCodeForbidden, "Tenant not found", nil)
			return
		}
		if tenant.CompanyID != claims.CompanyID {
			errors.WriteError(w, http.StatusForbidden, errors.ErrCodeForbidden, "Tenant belongs to another company", nil)
			return
		}

		db, err := m.dbPool.Get(tenant.ID, tenant.DBFilePath)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to connect to tenant database", nil)
			return
		}

		ctx := context.WithValue(r.Context(), apiContext.Tenant, &database.TenantContext{
			Tenant: tenant,
			DB:     db,
		})

		next(w, r.WithContext(ctx))
	}
}
