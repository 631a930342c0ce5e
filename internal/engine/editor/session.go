package editor

import (
	"encoding/json"

	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/platform/models"
)

// ConfigSession drives the Save/Cancel editing flow for a tenant plex
// configuration. It holds two snapshots: the last persisted config and the
// working copy. Dirty is recomputed after every mutation by comparing the
// serialized forms, so edits deep inside the aggregate are always detected.
type ConfigSession struct {
	Saved    *models.TenantPlexConfig
	Modified *models.TenantPlexConfig
	Dirty    bool

	SelectedAppID      string
	SelectedProviderID string

	FetchError string
	SaveError  string
}

func NewConfigSession() *ConfigSession {
	return &ConfigSession{}
}

func serializedEqual(a, b interface{}) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}

func (s *ConfigSession) recomputeDirty() {
	s.Dirty = !serializedEqual(s.Modified, s.Saved)
}

// FetchSuccess installs a freshly fetched configuration: both snapshots are
// set atomically, selections are cleared, and the session starts clean.
func (s *ConfigSession) FetchSuccess(cfg *models.TenantPlexConfig) {
	plexconfig.EnsureDefaults(cfg)
	saved := cfg.Clone()
	modified := cfg.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.SelectedAppID = ""
	s.SelectedProviderID = ""
	s.FetchError = ""
	s.SaveError = ""
}

// FetchFailed records a fetch error without touching any snapshot.
func (s *ConfigSession) FetchFailed(message string) {
	s.FetchError = message
}

// Modify applies an arbitrary edit to the working copy.
func (s *ConfigSession) Modify(edit func(cfg *models.TenantPlexConfig)) {
	if s.Modified == nil {
		return
	}
	edit(s.Modified)
	s.recomputeDirty()
}

// ModifyApp replaces the login app with a matching id in the working copy
// and keeps it selected. Unknown ids leave the copy untouched.
func (s *ConfigSession) ModifyApp(app models.LoginApp) {
	if s.Modified == nil {
		return
	}
	apps := s.Modified.TenantConfig.PlexMap.Apps
	for i := range apps {
		if apps[i].ID == app.ID {
			apps[i] = app
			s.SelectedAppID = app.ID
			break
		}
	}
	s.recomputeDirty()
}

// ModifyEmployeeApp replaces the employee app in the working copy.
func (s *ConfigSession) ModifyEmployeeApp(app models.LoginApp) {
	if s.Modified == nil {
		return
	}
	s.Modified.TenantConfig.PlexMap.EmployeeApp = &app
	s.recomputeDirty()
}

// ModifyProvider normalizes the payload against the declared type and
// replaces the provider with a matching id in the working copy.
func (s *ConfigSession) ModifyProvider(p models.Provider) {
	if s.Modified == nil {
		return
	}
	plexconfig.NormalizeProviderPayload(&p)
	plexconfig.ReplaceProvider(s.Modified, p)
	s.recomputeDirty()
}

// AddProvider appends a provider to the working copy and selects it.
func (s *ConfigSession) AddProvider(p models.Provider) {
	if s.Modified == nil {
		return
	}
	plexconfig.NormalizeProviderPayload(&p)
	plexconfig.AddProvider(s.Modified, p)
	s.SelectedProviderID = p.ID
	s.recomputeDirty()
}

// ModifyTelephony merges properties into the working copy's telephony
// provider.
func (s *ConfigSession) ModifyTelephony(props map[string]string) {
	if s.Modified == nil {
		return
	}
	plexconfig.ModifyTelephonyProperties(s.Modified, props)
	s.recomputeDirty()
}

// AddExternalIssuer appends an external OIDC issuer to the working copy.
func (s *ConfigSession) AddExternalIssuer(issuer string) {
	if s.Modified == nil {
		return
	}
	s.Modified.TenantConfig.ExternalOIDCIssuers = append(s.Modified.TenantConfig.ExternalOIDCIssuers, issuer)
	s.recomputeDirty()
}

// UpdateExternalIssuer replaces the issuer at index. Out-of-range indexes
// are ignored.
func (s *ConfigSession) UpdateExternalIssuer(index int, issuer string) {
	if s.Modified == nil || index < 0 || index >= len(s.Modified.TenantConfig.ExternalOIDCIssuers) {
		return
	}
	s.Modified.TenantConfig.ExternalOIDCIssuers[index] = issuer
	s.recomputeDirty()
}

// DeleteExternalIssuer removes the issuer at index. Out-of-range indexes
// are ignored.
func (s *ConfigSession) DeleteExternalIssuer(index int) {
	if s.Modified == nil || index < 0 || index >= len(s.Modified.TenantConfig.ExternalOIDCIssuers) {
		return
	}
	issuers := s.Modified.TenantConfig.ExternalOIDCIssuers
	s.Modified.TenantConfig.ExternalOIDCIssuers = append(issuers[:index], issuers[index+1:]...)
	s.recomputeDirty()
}

// SaveSuccess installs the echoed configuration as both snapshots. The
// selected app and provider are re-derived by id against the new config and
// cleared when they no longer exist.
func (s *ConfigSession) SaveSuccess(cfg *models.TenantPlexConfig) {
	plexconfig.EnsureDefaults(cfg)
	saved := cfg.Clone()
	modified := cfg.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.SaveError = ""

	if s.SelectedAppID != "" && plexconfig.FindApp(s.Modified, s.SelectedAppID) == nil {
		s.SelectedAppID = ""
	}
	if s.SelectedProviderID != "" && plexconfig.FindProvider(s.Modified, s.SelectedProviderID) == nil {
		s.SelectedProviderID = ""
	}
}

// SaveFailed records the error. Snapshots and dirtiness are untouched so the
// operator can retry or keep editing.
func (s *ConfigSession) SaveFailed(message string) {
	s.SaveError = message
}

// Reset discards every pending edit, restoring the working copy from the
// persisted snapshot.
func (s *ConfigSession) Reset() {
	if s.Saved == nil {
		return
	}
	modified := s.Saved.Clone()
	s.Modified = &modified
	s.Dirty = false
}

// SelectApp focuses a login app, discarding pending edits first.
func (s *ConfigSession) SelectApp(appID string) {
	s.Reset()
	s.SelectedAppID = appID
}

// SelectProvider focuses a provider, discarding pending edits first.
func (s *ConfigSession) SelectProvider(providerID string) {
	s.Reset()
	s.SelectedProviderID = providerID
}

// SelectedApp returns the selected app from the working copy, or nil.
func (s *ConfigSession) SelectedApp() *models.LoginApp {
	if s.Modified == nil || s.SelectedAppID == "" {
		return nil
	}
	return plexconfig.FindApp(s.Modified, s.SelectedAppID)
}

// SelectedProvider returns the selected provider from the working copy, or
// nil.
func (s *ConfigSession) SelectedProvider() *models.Provider {
	if s.Modified == nil || s.SelectedProviderID == "" {
		return nil
	}
	return plexconfig.FindProvider(s.Modified, s.SelectedProviderID)
}
