package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/audit"
)

type LoginAppHandler struct {
	auditLogger *audit.Logger
	cache       *plexconfig.ConfigCache
}

func NewLoginAppHandler(auditLogger *audit.Logger, cache *plexconfig.ConfigCache) *LoginAppHandler {
	return &LoginAppHandler{auditLogger: auditLogger, cache: cache}
}

type CreateLoginAppRequest struct {
	AppID        string `json:"app_id"`
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func (h *LoginAppHandler) Create(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	var req CreateLoginAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}
	if req.Name == "" {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "App name is required", nil)
		return
	}

	cfg, err := service.CreateLoginApp(req.AppID, req.Name, req.ClientID, req.ClientSecret)
	if err != nil {
		errors.WriteError(w, http.StatusConflict, errors.ErrCodeConflict, err.Error(), nil)
		return
	}

	h.cache.Invalidate(tenantCtx.Tenant.ID)
	h.auditLogger.Log(r.Context(), audit.ActionAppCreated, "login_app", req.AppID, map[string]interface{}{
		"name": req.Name, "tenant_id": tenantCtx.Tenant.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cfg)
}

func (h *LoginAppHandler) Delete(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	params := r.Context().Value(apiContext.Params).(httprouter.Params)
	appID := params.ByName("app_id")

	cfg, err := service.DeleteLoginApp(appID)
	if err != nil {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, err.Error(), nil)
		return
	}

	h.cache.Invalidate(tenantCtx.Tenant.ID)
	h.auditLogger.Log(r.Context(), audit.ActionAppDeleted, "login_app", appID, map[string]interface{}{
		"tenant_id": tenantCtx.Tenant.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// EnableSAMLIDP provisions a SAML IDP for the app named by the app_id query
// parameter.
func (h *LoginAppHandler) EnableSAMLIDP(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	appID := r.URL.Query().Get("app_id")
	if appID == "" {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Missing app_id query parameter", nil)
		return
	}

	cfg, err := service.EnableSAMLIDP(appID)
	if err != nil {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, err.Error(), nil)
		return
	}

	h.cache.Invalidate(tenantCtx.Tenant.ID)
	h.auditLogger.Log(r.Context(), audit.ActionSAMLEnabled, "login_app", appID, nil)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}
