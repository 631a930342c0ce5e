package editor

import (
	"testing"

	"plexconsole/internal/platform/models"
)

func fetchedConfig() *models.TenantPlexConfig {
	return &models.TenantPlexConfig{
		TenantConfig: models.TenantConfig{
			TenantID: "tenant1",
			PlexMap: models.PlexMap{
				Providers: []models.Provider{
					{
						ID:    "prov1",
						Name:  "Primary",
						Type:  models.ProviderTypeAuth0,
						Auth0: &models.Auth0Provider{Domain: "t.auth0.com", Apps: []models.Auth0App{{ID: "pa1"}}},
					},
				},
				Apps: []models.LoginApp{
					{ID: "app1", Name: "Web"},
					{ID: "app2", Name: "Mobile"},
				},
				Policy: models.Policy{ActiveProviderID: "prov1"},
			},
		},
	}
}

func TestConfigSession_FetchSuccess(t *testing.T) {
	s := NewConfigSession()
	s.SelectedAppID = "stale"

	s.FetchSuccess(fetchedConfig())

	if s.Dirty {
		t.Error("Fresh fetch must be clean")
	}
	if s.SelectedAppID != "" || s.SelectedProviderID != "" {
		t.Error("Selections must be cleared on fetch")
	}
	if s.Saved == nil || s.Modified == nil {
		t.Fatal("Both snapshots must be set")
	}
	if s.Modified.TenantConfig.PlexMap.Apps[0].ProviderAppIDs == nil {
		t.Error("List defaults not applied on fetch")
	}
}

func TestConfigSession_SnapshotsIndependent(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.PlexMap.Apps[0].Name = "Changed"
	})

	if s.Saved.TenantConfig.PlexMap.Apps[0].Name != "Web" {
		t.Error("Editing the working copy leaked into the saved snapshot")
	}
	if !s.Dirty {
		t.Error("Deep edit not detected")
	}
}

func TestConfigSession_DirtyClearsOnRevert(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.VerifyEmails = true
	})
	if !s.Dirty {
		t.Fatal("Expected dirty after edit")
	}

	// Manually reverting the edit must clear dirtiness without Reset.
	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.VerifyEmails = false
	})
	if s.Dirty {
		t.Error("Reverted edit still marked dirty")
	}
}

func TestConfigSession_ModifyApp(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	app := s.Modified.TenantConfig.PlexMap.Apps[1]
	app.Name = "Mobile v2"
	s.ModifyApp(app)

	if s.Modified.TenantConfig.PlexMap.Apps[1].Name != "Mobile v2" {
		t.Error("App was not replaced")
	}
	if s.SelectedAppID != "app2" {
		t.Error("Modified app not selected")
	}
	if !s.Dirty {
		t.Error("Expected dirty after app edit")
	}
}

func TestConfigSession_ModifyAppUnknownID(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	s.ModifyApp(models.LoginApp{ID: "ghost", Name: "Ghost"})

	if s.Dirty {
		t.Error("Unknown app id must not dirty the session")
	}
	if len(s.Modified.TenantConfig.PlexMap.Apps) != 2 {
		t.Error("App list changed")
	}
}

func TestConfigSession_ModifyProviderNormalizesPayload(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	p := s.Modified.TenantConfig.PlexMap.Providers[0]
	p.Type = models.ProviderTypeUC
	s.ModifyProvider(p)

	got := s.Modified.TenantConfig.PlexMap.Providers[0]
	if got.Auth0 != nil {
		t.Error("Stale auth0 payload survived the type switch")
	}
	if got.UC == nil {
		t.Error("Blank uc payload not installed")
	}
	if !s.Dirty {
		t.Error("Expected dirty after provider edit")
	}
}

func TestConfigSession_SaveSuccessRederivesSelections(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())
	s.SelectApp("app2")
	s.SelectProvider("prov1")

	// Echoed config no longer contains app2.
	echoed := fetchedConfig()
	echoed.TenantConfig.PlexMap.Apps = echoed.TenantConfig.PlexMap.Apps[:1]
	s.SaveSuccess(echoed)

	if s.Dirty {
		t.Error("Save must leave the session clean")
	}
	if s.SelectedAppID != "" {
		t.Error("Selection of a removed app must be cleared")
	}
	if s.SelectedProviderID != "prov1" {
		t.Error("Selection of a surviving provider must be kept")
	}
}

func TestConfigSession_SaveFailedKeepsState(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())
	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.DisableSignUps = true
	})

	s.SaveFailed("boom")

	if !s.Dirty {
		t.Error("Failed save must keep the session dirty")
	}
	if !s.Modified.TenantConfig.DisableSignUps {
		t.Error("Failed save must keep the pending edit")
	}
	if s.SaveError != "boom" {
		t.Error("Save error not recorded")
	}
}

func TestConfigSession_Reset(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())
	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.PlexMap.Apps[0].Name = "Changed"
	})

	s.Reset()

	if s.Dirty {
		t.Error("Reset must clear dirtiness")
	}
	if s.Modified.TenantConfig.PlexMap.Apps[0].Name != "Web" {
		t.Error("Reset must restore the saved snapshot")
	}
}

func TestConfigSession_SelectAppDiscardsEdits(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())
	s.Modify(func(cfg *models.TenantPlexConfig) {
		cfg.TenantConfig.PlexMap.Apps[0].Name = "Changed"
	})

	s.SelectApp("app2")

	if s.Dirty {
		t.Error("Selecting an app must discard pending edits")
	}
	if s.SelectedApp() == nil || s.SelectedApp().ID != "app2" {
		t.Error("Selected app not resolved from the working copy")
	}
	if s.Modified.TenantConfig.PlexMap.Apps[0].Name != "Web" {
		t.Error("Pending edit survived selection")
	}
}

func TestConfigSession_ExternalIssuers(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	s.AddExternalIssuer("https://issuer.one")
	s.AddExternalIssuer("https://issuer.two")
	if !s.Dirty {
		t.Error("Expected dirty after adding issuers")
	}

	s.UpdateExternalIssuer(1, "https://issuer.2")
	if s.Modified.TenantConfig.ExternalOIDCIssuers[1] != "https://issuer.2" {
		t.Error("Issuer not updated")
	}

	s.DeleteExternalIssuer(0)
	if len(s.Modified.TenantConfig.ExternalOIDCIssuers) != 1 {
		t.Error("Issuer not deleted")
	}

	s.UpdateExternalIssuer(5, "x")
	s.DeleteExternalIssuer(-1)
	if len(s.Modified.TenantConfig.ExternalOIDCIssuers) != 1 {
		t.Error("Out-of-range index modified the list")
	}
}

func TestConfigSession_ModifyTelephony(t *testing.T) {
	s := NewConfigSession()
	s.FetchSuccess(fetchedConfig())

	s.ModifyTelephony(map[string]string{models.TwilioAccountSID: "AC1"})

	if s.Modified.TenantConfig.PlexMap.TelephonyProvider.Properties[models.TwilioAccountSID] != "AC1" {
		t.Error("Telephony property not merged")
	}
	if !s.Dirty {
		t.Error("Expected dirty after telephony edit")
	}
}
