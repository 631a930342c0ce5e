package plexconfig

import "plexconsole/internal/platform/models"

// EnsureDefaults replaces nil list fields on every login app with empty
// slices so callers can append without nil checks. Idempotent.
func EnsureDefaults(cfg *models.TenantPlexConfig) {
	if cfg == nil {
		return
	}
	for i := range cfg.TenantConfig.PlexMap.Apps {
		ensureAppDefaults(&cfg.TenantConfig.PlexMap.Apps[i])
	}
	if cfg.TenantConfig.PlexMap.EmployeeApp != nil {
		ensureAppDefaults(cfg.TenantConfig.PlexMap.EmployeeApp)
	}
}

func ensureAppDefaults(app *models.LoginApp) {
	if app.ProviderAppIDs == nil {
		app.ProviderAppIDs = []string{}
	}
	if app.AllowedRedirectURIs == nil {
		app.AllowedRedirectURIs = []string{}
	}
	if app.AllowedLogoutURIs == nil {
		app.AllowedLogoutURIs = []string{}
	}
}
