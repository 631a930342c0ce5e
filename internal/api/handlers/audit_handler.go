package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/audit"
	"plexconsole/internal/platform/database"
)

type AuditHandler struct {
	auditLogger *audit.Logger
}

func NewAuditHandler(auditLogger *audit.Logger) *AuditHandler {
	return &AuditHandler{auditLogger: auditLogger}
}

// List returns the most recent audit entries for the tenant in scope.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantCtx := r.Context().Value(apiContext.Tenant).(*database.TenantContext)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := h.auditLogger.List(tenantCtx.Tenant.ID, limit)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load audit log", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}
