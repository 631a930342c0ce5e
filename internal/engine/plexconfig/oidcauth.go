package plexconfig

import "strings"

// OIDCAuthSetting is one entry parsed from the packed authentication-settings
// string an upstream OIDC provider hands back.
type OIDCAuthSetting struct {
	Name        string
	Description string
}

// ParseOIDCAuthSettings parses a comma-separated list of colon-delimited
// entries ("name:description:x:y"). Entries with the wrong field count are
// skipped. Empty input yields an empty list.
func ParseOIDCAuthSettings(raw string) []OIDCAuthSetting {
	settings := []OIDCAuthSetting{}
	if raw == "" {
		return settings
	}
	for _, entry := range strings.Split(raw, ",") {
		fields := strings.Split(entry, ":")
		if len(fields) != 4 {
			continue
		}
		settings = append(settings, OIDCAuthSetting{
			Name:        fields[0],
			Description: fields[1],
		})
	}
	return settings
}
