package handlers

import (
	"encoding/json"
	"net/http"

	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/models"
)

// ElementsHandler serves the email and SMS message template endpoints.
type ElementsHandler struct{}

func NewElementsHandler() *ElementsHandler {
	return &ElementsHandler{}
}

type elementsResponse struct {
	TenantAppMessageElements *models.TenantAppMessageElements `json:"tenant_app_message_elements"`
}

type saveElementsRequest struct {
	Modified *models.ModifiedMessageTypeMessageElements `json:"modified_message_type_message_elements"`
}

func (h *ElementsHandler) getElements(w http.ResponseWriter, r *http.Request, sms bool) {
	service, _ := tenantService(r)

	elements, err := service.GetMessageElements(sms)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load message elements", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(elementsResponse{TenantAppMessageElements: elements})
}

func (h *ElementsHandler) saveElements(w http.ResponseWriter, r *http.Request, sms bool) {
	service, _ := tenantService(r)

	var req saveElementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Modified == nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}
	if models.IsSMSMessageType(req.Modified.MessageType) != sms {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Message type does not match endpoint transport", nil)
		return
	}

	elements, err := service.SaveMessageElements(req.Modified)
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(elementsResponse{TenantAppMessageElements: elements})
}

func (h *ElementsHandler) GetEmail(w http.ResponseWriter, r *http.Request) {
	h.getElements(w, r, false)
}

func (h *ElementsHandler) SaveEmail(w http.ResponseWriter, r *http.Request) {
	h.saveElements(w, r, false)
}

func (h *ElementsHandler) GetSMS(w http.ResponseWriter, r *http.Request) {
	h.getElements(w, r, true)
}

func (h *ElementsHandler) SaveSMS(w http.ResponseWriter, r *http.Request) {
	h.saveElements(w, r, true)
}
