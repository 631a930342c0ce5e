package plexconfig

import (
	"fmt"

	"plexconsole/internal/platform/models"
)

// AddProvider appends a provider to the plex map.
func AddProvider(cfg *models.TenantPlexConfig, p models.Provider) {
	cfg.TenantConfig.PlexMap.Providers = append(cfg.TenantConfig.PlexMap.Providers, p)
}

// ReplaceProvider swaps the provider with a matching id. Unknown ids leave
// the config untouched.
func ReplaceProvider(cfg *models.TenantPlexConfig, p models.Provider) {
	providers := cfg.TenantConfig.PlexMap.Providers
	for i := range providers {
		if providers[i].ID == p.ID {
			providers[i] = p
			return
		}
	}
}

// DeleteProvider removes the provider with the given id after checking the
// deletion guards.
func DeleteProvider(cfg *models.TenantPlexConfig, providerID string) error {
	if err := CheckProviderDeletable(cfg, providerID); err != nil {
		return err
	}
	providers := cfg.TenantConfig.PlexMap.Providers
	for i := range providers {
		if providers[i].ID == providerID {
			cfg.TenantConfig.PlexMap.Providers = append(providers[:i], providers[i+1:]...)
			return nil
		}
	}
	return nil
}

// CheckProviderDeletable rejects deleting the active provider or any provider
// whose underlying apps are still referenced by a login app.
func CheckProviderDeletable(cfg *models.TenantPlexConfig, providerID string) error {
	if cfg.TenantConfig.PlexMap.Policy.ActiveProviderID == providerID {
		return fmt.Errorf("provider %s is the active provider", providerID)
	}

	var target *models.Provider
	providers := cfg.TenantConfig.PlexMap.Providers
	for i := range providers {
		if providers[i].ID == providerID {
			target = &providers[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	referenced := map[string]bool{}
	for _, id := range ProviderAppIDs(*target) {
		referenced[id] = true
	}
	for _, app := range cfg.TenantConfig.PlexMap.Apps {
		for _, id := range app.ProviderAppIDs {
			if referenced[id] {
				return fmt.Errorf("provider app %s is still used by login app %s", id, app.Name)
			}
		}
	}
	return nil
}

// ProviderAppIDs lists the ids of the underlying provider apps, whatever the
// provider type.
func ProviderAppIDs(p models.Provider) []string {
	var ids []string
	switch p.Type {
	case models.ProviderTypeAuth0:
		if p.Auth0 != nil {
			for _, a := range p.Auth0.Apps {
				ids = append(ids, a.ID)
			}
		}
	case models.ProviderTypeUC:
		if p.UC != nil {
			for _, a := range p.UC.Apps {
				ids = append(ids, a.ID)
			}
		}
	case models.ProviderTypeCognito:
		if p.Cognito != nil {
			for _, a := range p.Cognito.Apps {
				ids = append(ids, a.ID)
			}
		}
	}
	return ids
}

// NormalizeProviderPayload makes the payload match the declared type: sibling
// payloads are dropped and a blank payload is installed when the matching one
// is missing. Called after every provider edit so a type switch never leaves
// stale fields behind.
func NormalizeProviderPayload(p *models.Provider) {
	switch p.Type {
	case models.ProviderTypeAuth0:
		p.UC = nil
		p.Cognito = nil
		if p.Auth0 == nil {
			p.Auth0 = &models.Auth0Provider{Apps: []models.Auth0App{}}
		}
	case models.ProviderTypeUC:
		p.Auth0 = nil
		p.Cognito = nil
		if p.UC == nil {
			p.UC = &models.UCProvider{Apps: []models.UCApp{}}
		}
	case models.ProviderTypeCognito:
		p.Auth0 = nil
		p.UC = nil
		if p.Cognito == nil {
			p.Cognito = &models.CognitoProvider{Apps: []models.CognitoApp{}}
		}
	}
}

// CanSyncUsers reports whether the provider type supports pulling users from
// the upstream IdP.
func CanSyncUsers(p models.Provider) bool {
	switch p.Type {
	case models.ProviderTypeAuth0, models.ProviderTypeCognito:
		return true
	default:
		return false
	}
}

// FindProvider returns the provider with the given id, or nil.
func FindProvider(cfg *models.TenantPlexConfig, providerID string) *models.Provider {
	providers := cfg.TenantConfig.PlexMap.Providers
	for i := range providers {
		if providers[i].ID == providerID {
			return &providers[i]
		}
	}
	return nil
}

// FindApp returns the login app with the given id, or nil.
func FindApp(cfg *models.TenantPlexConfig, appID string) *models.LoginApp {
	apps := cfg.TenantConfig.PlexMap.Apps
	for i := range apps {
		if apps[i].ID == appID {
			return &apps[i]
		}
	}
	return nil
}
