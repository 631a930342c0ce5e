package plexconfig

import (
	"fmt"
	"strings"

	"plexconsole/internal/platform/models"
)

// UpdatePageParameter sets the current value of a single page parameter.
// Unknown page types or parameter names are an error.
func UpdatePageParameter(resp *models.PageParametersResponse, pageType, paramName, value string) error {
	params, ok := resp.PageTypeParameters[pageType]
	if !ok {
		return fmt.Errorf("unknown page type %s", pageType)
	}
	param, ok := params[paramName]
	if !ok {
		return fmt.Errorf("unknown parameter %s for page type %s", paramName, pageType)
	}
	param.CurrentValue = value
	params[paramName] = param
	return nil
}

// ToggleArrayParam sets the value's membership in a comma-joined set and
// returns the new joined value. The caller supplies the desired direction, so
// repeating an add or a remove is a no-op. Order of the remaining entries is
// preserved.
func ToggleArrayParam(current, value string, add bool) string {
	var parts []string
	if current != "" {
		parts = strings.Split(current, ",")
	}
	out := parts[:0]
	found := false
	for _, p := range parts {
		if p == value {
			found = true
			if !add {
				continue
			}
		}
		out = append(out, p)
	}
	if add && !found {
		out = append(out, value)
	}
	return strings.Join(out, ",")
}

// ArrayParamAsSet expands a comma-joined array parameter into a membership
// set. Empty input yields an empty set.
func ArrayParamAsSet(current string) map[string]bool {
	set := map[string]bool{}
	if current == "" {
		return set
	}
	for _, p := range strings.Split(current, ",") {
		set[p] = true
	}
	return set
}
