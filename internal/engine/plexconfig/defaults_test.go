package plexconfig

import (
	"testing"

	"plexconsole/internal/platform/models"
)

func TestEnsureDefaults(t *testing.T) {
	cfg := &models.TenantPlexConfig{
		TenantConfig: models.TenantConfig{
			PlexMap: models.PlexMap{
				Apps: []models.LoginApp{
					{ID: "app1"},
					{ID: "app2", ProviderAppIDs: []string{"pa1"}},
				},
				EmployeeApp: &models.LoginApp{ID: "emp"},
			},
		},
	}

	EnsureDefaults(cfg)

	for _, app := range cfg.TenantConfig.PlexMap.Apps {
		if app.ProviderAppIDs == nil || app.AllowedRedirectURIs == nil || app.AllowedLogoutURIs == nil {
			t.Errorf("App %s still has nil list fields", app.ID)
		}
	}
	if got := cfg.TenantConfig.PlexMap.Apps[1].ProviderAppIDs; len(got) != 1 || got[0] != "pa1" {
		t.Errorf("Existing provider app ids were replaced: %v", got)
	}
	if cfg.TenantConfig.PlexMap.EmployeeApp.AllowedRedirectURIs == nil {
		t.Error("Employee app still has nil redirect uris")
	}
}

func TestEnsureDefaultsIdempotent(t *testing.T) {
	cfg := &models.TenantPlexConfig{
		TenantConfig: models.TenantConfig{
			PlexMap: models.PlexMap{Apps: []models.LoginApp{{ID: "app1"}}},
		},
	}
	EnsureDefaults(cfg)
	first := cfg.Clone()
	EnsureDefaults(cfg)

	if len(cfg.TenantConfig.PlexMap.Apps[0].ProviderAppIDs) != len(first.TenantConfig.PlexMap.Apps[0].ProviderAppIDs) {
		t.Error("Second application changed the config")
	}
}

func TestEnsureDefaultsNilConfig(t *testing.T) {
	EnsureDefaults(nil)
}
