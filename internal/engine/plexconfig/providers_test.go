package plexconfig

import (
	"testing"

	"plexconsole/internal/platform/models"
)

func testConfig() *models.TenantPlexConfig {
	return &models.TenantPlexConfig{
		TenantConfig: models.TenantConfig{
			PlexMap: models.PlexMap{
				Providers: []models.Provider{
					{
						ID:   "prov1",
						Name: "Primary",
						Type: models.ProviderTypeAuth0,
						Auth0: &models.Auth0Provider{
							Domain: "tenant.auth0.com",
							Apps:   []models.Auth0App{{ID: "pa1", Name: "Primary app"}},
						},
					},
					{
						ID:   "prov2",
						Name: "Secondary",
						Type: models.ProviderTypeUC,
						UC:   &models.UCProvider{Apps: []models.UCApp{{ID: "pa2", Name: "Secondary app"}}},
					},
				},
				Apps: []models.LoginApp{
					{ID: "app1", Name: "Web", ProviderAppIDs: []string{"pa1"}},
				},
				Policy: models.Policy{ActiveProviderID: "prov1"},
			},
		},
	}
}

func TestAddProvider(t *testing.T) {
	cfg := testConfig()
	AddProvider(cfg, models.Provider{ID: "prov3", Type: models.ProviderTypeCognito})

	if len(cfg.TenantConfig.PlexMap.Providers) != 3 {
		t.Fatalf("Expected 3 providers, got %d", len(cfg.TenantConfig.PlexMap.Providers))
	}
	if cfg.TenantConfig.PlexMap.Providers[2].ID != "prov3" {
		t.Error("New provider not appended at the end")
	}
}

func TestReplaceProvider(t *testing.T) {
	cfg := testConfig()
	ReplaceProvider(cfg, models.Provider{ID: "prov2", Name: "Renamed", Type: models.ProviderTypeUC})

	if cfg.TenantConfig.PlexMap.Providers[1].Name != "Renamed" {
		t.Error("Provider was not replaced")
	}
}

func TestReplaceProviderUnknownID(t *testing.T) {
	cfg := testConfig()
	before := len(cfg.TenantConfig.PlexMap.Providers)
	ReplaceProvider(cfg, models.Provider{ID: "missing", Name: "Ghost"})

	if len(cfg.TenantConfig.PlexMap.Providers) != before {
		t.Error("Provider count changed")
	}
	for _, p := range cfg.TenantConfig.PlexMap.Providers {
		if p.Name == "Ghost" {
			t.Error("Unknown id was inserted")
		}
	}
}

func TestCheckProviderDeletable(t *testing.T) {
	tests := []struct {
		name       string
		providerID string
		wantErr    bool
	}{
		{"Active Provider", "prov1", true},
		{"Unreferenced Provider", "prov2", false},
		{"Unknown Provider", "missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckProviderDeletable(testConfig(), tt.providerID)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckProviderDeletableReferencedApps(t *testing.T) {
	cfg := testConfig()
	cfg.TenantConfig.PlexMap.Policy.ActiveProviderID = "prov2"

	// prov1's app pa1 is referenced by login app app1
	if err := CheckProviderDeletable(cfg, "prov1"); err == nil {
		t.Error("Expected error for provider with referenced apps")
	}
}

func TestDeleteProvider(t *testing.T) {
	cfg := testConfig()
	if err := DeleteProvider(cfg, "prov2"); err != nil {
		t.Fatalf("DeleteProvider failed: %v", err)
	}
	if len(cfg.TenantConfig.PlexMap.Providers) != 1 {
		t.Errorf("Expected 1 provider, got %d", len(cfg.TenantConfig.PlexMap.Providers))
	}

	if err := DeleteProvider(cfg, "prov1"); err == nil {
		t.Error("Expected error deleting the active provider")
	}
}

func TestNormalizeProviderPayload(t *testing.T) {
	tests := []struct {
		name     string
		provider models.Provider
		check    func(t *testing.T, p models.Provider)
	}{
		{
			name: "Switch Auth0 To UC",
			provider: models.Provider{
				Type:  models.ProviderTypeUC,
				Auth0: &models.Auth0Provider{Domain: "old.auth0.com"},
			},
			check: func(t *testing.T, p models.Provider) {
				if p.Auth0 != nil {
					t.Error("Stale auth0 payload kept")
				}
				if p.UC == nil || p.UC.Apps == nil {
					t.Error("Blank uc payload not installed")
				}
			},
		},
		{
			name: "Keep Matching Payload",
			provider: models.Provider{
				Type:  models.ProviderTypeAuth0,
				Auth0: &models.Auth0Provider{Domain: "keep.auth0.com"},
			},
			check: func(t *testing.T, p models.Provider) {
				if p.Auth0 == nil || p.Auth0.Domain != "keep.auth0.com" {
					t.Error("Matching payload was replaced")
				}
			},
		},
		{
			name:     "Install Blank Cognito",
			provider: models.Provider{Type: models.ProviderTypeCognito},
			check: func(t *testing.T, p models.Provider) {
				if p.Cognito == nil || p.Cognito.Apps == nil {
					t.Error("Blank cognito payload not installed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.provider
			NormalizeProviderPayload(&p)
			tt.check(t, p)
		})
	}
}

func TestProviderAppIDs(t *testing.T) {
	cfg := testConfig()
	ids := ProviderAppIDs(cfg.TenantConfig.PlexMap.Providers[0])
	if len(ids) != 1 || ids[0] != "pa1" {
		t.Errorf("Expected [pa1], got %v", ids)
	}
}

func TestCanSyncUsers(t *testing.T) {
	if !CanSyncUsers(models.Provider{Type: models.ProviderTypeAuth0}) {
		t.Error("auth0 should sync")
	}
	if CanSyncUsers(models.Provider{Type: models.ProviderTypeUC}) {
		t.Error("uc should not sync")
	}
}
