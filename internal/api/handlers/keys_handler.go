package handlers

import (
	"encoding/json"
	"net/http"

	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/audit"
	"plexconsole/internal/platform/config"
)

// KeysHandler serves the tenant signing key endpoints.
type KeysHandler struct {
	auditLogger *audit.Logger
	keysCfg     config.KeysConfig
	cache       *plexconfig.ConfigCache
}

func NewKeysHandler(auditLogger *audit.Logger, keysCfg config.KeysConfig, cache *plexconfig.ConfigCache) *KeysHandler {
	return &KeysHandler{
		auditLogger: auditLogger,
		keysCfg:     keysCfg,
		cache:       cache,
	}
}

func (h *KeysHandler) List(w http.ResponseWriter, r *http.Request) {
	service, _ := tenantService(r)

	keys, err := service.ListKeys()
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load keys", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keys)
}

func (h *KeysHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	bits := h.keysCfg.RSABits
	if bits == 0 {
		bits = 2048
	}

	keys, err := service.RotateKeys(bits)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to rotate keys", nil)
		return
	}

	h.cache.Invalidate(tenantCtx.Tenant.ID)
	h.auditLogger.Log(r.Context(), audit.ActionKeysRotated, "tenant_keys", keys.KeyID, map[string]interface{}{
		"tenant_id": tenantCtx.Tenant.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keys)
}

func (h *KeysHandler) Private(w http.ResponseWriter, r *http.Request) {
	service, _ := tenantService(r)

	keys, err := service.PrivateKey()
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load private key", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(keys)
}
