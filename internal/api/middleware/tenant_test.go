package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/julienschmidt/httprouter"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/platform/auth"
	"plexconsole/internal/platform/config"
	"plexconsole/internal/platform/database"
	"plexconsole/internal/platform/repositories"
)

func tenantRequest(tenantID, companyID string) *http.Request {
	req, _ := http.NewRequest("GET", "/", nil)

	claims := &auth.Claims{OperatorID: "op1", CompanyID: companyID}
	ctx := context.WithValue(req.Context(), apiContext.Claims, claims)
	ctx = context.WithValue(ctx, apiContext.Params, httprouter.Params{
		{Key: "tenant_id", Value: tenantID},
	})
	return req.WithContext(ctx)
}

func TestTenantMiddleware(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	tenantRepo := repositories.NewTenantRepository(db)

	cfg := config.TenantDBConfig{BasePath: "/tmp", MaxConnectionsPerTenant: 1}
	pool := database.NewTenantDBPool(cfg)
	defer pool.CloseAll()

	middleware := NewTenantMiddleware(tenantRepo, pool)

	tenantRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "company_id", "name", "tenant_url", "db_file_path", "state", "created_at", "updated_at", "deleted_at",
		}).AddRow("tenant_123", "co_1", "Acme Prod", "https://acme.example.com", ":memory:", "active", 1234567890, 1234567890, nil)
	}

	t.Run("Valid Tenant", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ?").
			WithArgs("tenant_123").
			WillReturnRows(tenantRows())

		rr := httptest.NewRecorder()
		handler := middleware.Handle(func(w http.ResponseWriter, r *http.Request) {
			tenant := r.Context().Value(apiContext.Tenant).(*database.TenantContext)
			if tenant.Tenant.ID != "tenant_123" {
				t.Errorf("Expected tenant_123, got %s", tenant.Tenant.ID)
			}
			if tenant.DB == nil {
				t.Error("Expected DB connection, got nil")
			}
			w.WriteHeader(http.StatusOK)
		})

		handler.ServeHTTP(rr, tenantRequest("tenant_123", "co_1"))

		if rr.Code != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
		}
	})

	t.Run("Tenant Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ?").
			WithArgs("tenant_999").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rr := httptest.NewRecorder()
		handler := middleware.Handle(func(w http.ResponseWriter, r *http.Request) {
			t.Error("Handler should not be called")
		})

		handler.ServeHTTP(rr, tenantRequest("tenant_999", "co_1"))

		if rr.Code != http.StatusForbidden {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusForbidden)
		}
	})

	t.Run("Wrong Company", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = ?").
			WithArgs("tenant_123").
			WillReturnRows(tenantRows())

		rr := httptest.NewRecorder()
		handler := middleware.Handle(func(w http.ResponseWriter, r *http.Request) {
			t.Error("Handler should not be called")
		})

		handler.ServeHTTP(rr, tenantRequest("tenant_123", "co_other"))

		if rr.Code != http.StatusForbidden {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusForbidden)
		}
	})

	t.Run("Missing Tenant Param", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := middleware.Handle(func(w http.ResponseWriter, r *http.Request) {
			t.Error("Handler should not be called")
		})

		handler.ServeHTTP(rr, tenantRequest("", "co_1"))

		if rr.Code != http.StatusBadRequest {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
		}
	})
}
