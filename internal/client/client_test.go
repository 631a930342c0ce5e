package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apiErrors "plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/models"
)

func TestFetchPlexConfigAppliesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tenants/tenant1/plexconfig" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Unexpected auth header %q", got)
		}
		// App with null list fields, as older configs store them.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tenant_config":{"plex_map":{"providers":[],"apps":[{"id":"app1","name":"Web","provider_app_ids":null}],"policy":{"active_provider_id":""}},"tenant_id":"tenant1"}}`))
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	cfg, err := c.FetchPlexConfig()
	if err != nil {
		t.Fatalf("FetchPlexConfig failed: %v", err)
	}

	app := cfg.TenantConfig.PlexMap.Apps[0]
	if app.ProviderAppIDs == nil || app.AllowedRedirectURIs == nil || app.AllowedLogoutURIs == nil {
		t.Error("List defaults not applied to fetched config")
	}
}

func TestSavePlexConfigErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, http.StatusBadRequest, apiErrors.ErrCodeInvalidInput, "active provider ghost not found", nil)
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	_, err := c.SavePlexConfig(&models.TenantPlexConfig{})
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*apiErrors.APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "active provider ghost not found" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
	if apiErr.Code != apiErrors.ErrCodeInvalidInput {
		t.Errorf("Unexpected code %q", apiErr.Code)
	}
}

func TestSavePlexConfigNonEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	_, err := c.SavePlexConfig(&models.TenantPlexConfig{})

	apiErr, ok := err.(*apiErrors.APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("Expected raw body fallback, got %q", apiErr.Message)
	}
}

func TestSaveEmailElementsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tenants/tenant1/emailelements" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			Modified *models.ModifiedMessageTypeMessageElements `json:"modified_message_type_message_elements"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Modified == nil {
			t.Fatalf("Bad save payload: %v", err)
		}
		if req.Modified.MessageType != "invite_new" {
			t.Errorf("Unexpected message type %q", req.Modified.MessageType)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"tenant_app_message_elements": models.TenantAppMessageElements{
				TenantID:           "tenant1",
				AppMessageElements: []models.AppMessageElement{{AppID: req.Modified.AppID}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	elements, err := c.SaveEmailElements(&models.ModifiedMessageTypeMessageElements{
		TenantID:    "tenant1",
		AppID:       "app1",
		MessageType: "invite_new",
	})
	if err != nil {
		t.Fatalf("SaveEmailElements failed: %v", err)
	}
	if len(elements.AppMessageElements) != 1 || elements.AppMessageElements[0].AppID != "app1" {
		t.Errorf("Unexpected response: %+v", elements)
	}
}

func TestUploadLogo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("app_id") != "app1" {
			t.Errorf("Missing app_id query param")
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("Missing image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "logo.png" {
			t.Errorf("Unexpected filename %q", header.Filename)
		}
		json.NewEncoder(w).Encode(map[string]string{"logo_url": "https://cdn.example.com/logo.png"})
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	logoURL, err := c.UploadLogo("app1", "logo.png", strings.NewReader("fake png bytes"))
	if err != nil {
		t.Fatalf("UploadLogo failed: %v", err)
	}
	if logoURL != "https://cdn.example.com/logo.png" {
		t.Errorf("Unexpected logo url %q", logoURL)
	}
}

func TestRotateKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/tenants/tenant1/keys/actions/rotate" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.TenantKeys{KeyID: "key2", PublicKey: "PEM"})
	}))
	defer server.Close()

	c := New(server.URL, "tenant1", "tok", nil)
	keys, err := c.RotateKeys()
	if err != nil {
		t.Fatalf("RotateKeys failed: %v", err)
	}
	if keys.KeyID != "key2" {
		t.Errorf("Unexpected key id %q", keys.KeyID)
	}
}
