package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/engine/plexconfig"
	engineSync "plexconsole/internal/engine/sync"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/pkg/validator"
	"plexconsole/internal/platform/audit"
	"plexconsole/internal/platform/database"
	"plexconsole/internal/platform/models"
)

// PlexConfigHandler serves the tenant configuration aggregate. The repository
// and service are resolved per request from the tenant context.
type PlexConfigHandler struct {
	auditLogger *audit.Logger
	dispatcher  *engineSync.Dispatcher
	cache       *plexconfig.ConfigCache
}

func NewPlexConfigHandler(auditLogger *audit.Logger, dispatcher *engineSync.Dispatcher, cache *plexconfig.ConfigCache) *PlexConfigHandler {
	return &PlexConfigHandler{
		auditLogger: auditLogger,
		dispatcher:  dispatcher,
		cache:       cache,
	}
}

func tenantService(r *http.Request) (*plexconfig.Service, *database.TenantContext) {
	tenantCtx := r.Context().Value(apiContext.Tenant).(*database.TenantContext)
	repo := plexconfig.NewRepository(tenantCtx.DB)
	return plexconfig.NewService(repo, tenantCtx.Tenant), tenantCtx
}

func (h *PlexConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	if cfg, ok := h.cache.Get(tenantCtx.Tenant.ID); ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
		return
	}

	cfg, err := service.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load plex config")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load configuration", nil)
		return
	}

	h.cache.Set(tenantCtx.Tenant.ID, cfg)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *PlexConfigHandler) Save(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	var cfg models.TenantPlexConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	for _, app := range cfg.TenantConfig.PlexMap.Apps {
		if err := validator.ValidateRedirectURIs(app.AllowedRedirectURIs); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
			return
		}
		if err := validator.ValidateRedirectURIs(app.AllowedLogoutURIs); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
			return
		}
	}

	saved, err := service.SaveConfig(&cfg)
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	h.cache.Set(tenantCtx.Tenant.ID, saved)
	h.auditLogger.Log(r.Context(), audit.ActionConfigSaved, "plex_config", tenantCtx.Tenant.ID, nil)

	// Saving with a sync-capable active provider kicks off a user sync cycle.
	active := plexconfig.FindProvider(saved, saved.TenantConfig.PlexMap.Policy.ActiveProviderID)
	if active != nil && plexconfig.CanSyncUsers(*active) {
		h.dispatcher.Dispatch(tenantCtx.Tenant.ID, active.ID, string(active.Type))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}
