package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/audit"
	"plexconsole/internal/platform/config"
)

var allowedLogoExtensions = map[string]bool{
	".gif": true,
	".png": true,
	".jpg": true,
}

// LogoHandler accepts multipart logo uploads and records the stored file as
// the app's every-page logo parameter.
type LogoHandler struct {
	auditLogger *audit.Logger
	uploadsCfg  config.UploadsConfig
}

func NewLogoHandler(auditLogger *audit.Logger, uploadsCfg config.UploadsConfig) *LogoHandler {
	return &LogoHandler{
		auditLogger: auditLogger,
		uploadsCfg:  uploadsCfg,
	}
}

func (h *LogoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	service, tenantCtx := tenantService(r)

	appID := r.URL.Query().Get("app_id")
	if appID == "" {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Missing app_id query parameter", nil)
		return
	}

	maxBytes := h.uploadsCfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = 1 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Missing image file", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	if !allowedLogoExtensions[ext] {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Logo must be a gif, png or jpg", nil)
		return
	}

	name := fmt.Sprintf("%s-%s%s", tenantCtx.Tenant.ID, uuid.New().String(), ext)
	dir := filepath.Join(h.uploadsCfg.LogoDir, tenantCtx.Tenant.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to store logo", nil)
		return
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to store logo", nil)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to store logo", nil)
		return
	}

	logoURL := fmt.Sprintf("%s/%s/%s", strings.TrimRight(h.uploadsCfg.LogoBaseURL, "/"), tenantCtx.Tenant.ID, name)
	if err := service.SetLogo(appID, logoURL); err != nil {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, err.Error(), nil)
		return
	}

	h.auditLogger.Log(r.Context(), audit.ActionLogoUploaded, "login_app", appID, map[string]interface{}{
		"file": name,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"logo_url": logoURL})
}
