package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/models"
)

// PageParamsHandler serves the per-app page parameter endpoints.
type PageParamsHandler struct{}

func NewPageParamsHandler() *PageParamsHandler {
	return &PageParamsHandler{}
}

func (h *PageParamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, _ := tenantService(r)

	params := r.Context().Value(apiContext.Params).(httprouter.Params)
	appID := params.ByName("app_id")

	resp, err := service.GetPageParameters(appID)
	if err != nil {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *PageParamsHandler) Save(w http.ResponseWriter, r *http.Request) {
	service, _ := tenantService(r)

	params := r.Context().Value(apiContext.Params).(httprouter.Params)
	appID := params.ByName("app_id")

	var req models.PageParametersResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	resp, err := service.SavePageParameters(appID, &req)
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
