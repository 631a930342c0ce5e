package plexconfig

import (
	"errors"
	"fmt"

	"plexconsole/internal/platform/models"
)

// ValidateConfig checks referential integrity before a save is accepted:
// the active provider must exist, app ids must be unique, and every
// provider-app reference on a login app must resolve.
func ValidateConfig(cfg *models.TenantPlexConfig) error {
	pm := cfg.TenantConfig.PlexMap

	if pm.Policy.ActiveProviderID == "" {
		return errors.New("no active provider set")
	}
	if FindProvider(cfg, pm.Policy.ActiveProviderID) == nil {
		return fmt.Errorf("active provider %s not found", pm.Policy.ActiveProviderID)
	}

	providerApps := map[string]bool{}
	for _, p := range pm.Providers {
		for _, id := range ProviderAppIDs(p) {
			providerApps[id] = true
		}
	}

	appIDs := map[string]bool{}
	for _, app := range pm.Apps {
		if appIDs[app.ID] {
			return fmt.Errorf("duplicate login app id %s", app.ID)
		}
		appIDs[app.ID] = true
		for _, id := range app.ProviderAppIDs {
			if !providerApps[id] {
				return fmt.Errorf("login app %s references unknown provider app %s", app.Name, id)
			}
		}
	}
	return nil
}
