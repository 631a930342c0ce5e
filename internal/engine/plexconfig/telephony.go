package plexconfig

import "plexconsole/internal/platform/models"

// ModifyTelephonyProperties merges the given keys into the telephony provider
// properties. Keys not named are left untouched.
func ModifyTelephonyProperties(cfg *models.TenantPlexConfig, props map[string]string) {
	tp := &cfg.TenantConfig.PlexMap.TelephonyProvider
	if tp.Properties == nil {
		tp.Properties = map[string]string{}
	}
	for k, v := range props {
		tp.Properties[k] = v
	}
}
