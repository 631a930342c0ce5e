package editor

import (
	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/platform/models"
)

// PageParamsSession drives the per-app page parameter editing flow.
type PageParamsSession struct {
	Saved    *models.PageParametersResponse
	Modified *models.PageParametersResponse
	Dirty    bool

	SaveError string
}

func NewPageParamsSession() *PageParamsSession {
	return &PageParamsSession{}
}

func (s *PageParamsSession) recomputeDirty() {
	s.Dirty = !serializedEqual(s.Modified, s.Saved)
}

// FetchSuccess installs a freshly fetched parameter set.
func (s *PageParamsSession) FetchSuccess(resp *models.PageParametersResponse) {
	saved := resp.Clone()
	modified := resp.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.SaveError = ""
}

// UpdateParameter sets one parameter's current value in the working copy.
func (s *PageParamsSession) UpdateParameter(pageType, paramName, value string) error {
	if s.Modified == nil {
		return nil
	}
	err := plexconfig.UpdatePageParameter(s.Modified, pageType, paramName, value)
	s.recomputeDirty()
	return err
}

// ToggleArrayParameter sets one value's membership in an array-typed
// parameter. The add flag carries the checkbox state, so stale repeats cannot
// flip the stored set.
func (s *PageParamsSession) ToggleArrayParameter(pageType, paramName, value string, add bool) error {
	if s.Modified == nil {
		return nil
	}
	params, ok := s.Modified.PageTypeParameters[pageType]
	if !ok {
		return plexconfig.UpdatePageParameter(s.Modified, pageType, paramName, value)
	}
	param, ok := params[paramName]
	if !ok {
		return plexconfig.UpdatePageParameter(s.Modified, pageType, paramName, value)
	}
	toggled := plexconfig.ToggleArrayParam(param.CurrentValue, value, add)
	err := plexconfig.UpdatePageParameter(s.Modified, pageType, paramName, toggled)
	s.recomputeDirty()
	return err
}

// CloneFrom copies another app's current values onto the working copy,
// parameter by parameter. Pages or parameters the working copy does not know
// are skipped.
func (s *PageParamsSession) CloneFrom(source *models.PageParametersResponse) {
	if s.Modified == nil || source == nil {
		return
	}
	for page, params := range source.PageTypeParameters {
		dst, ok := s.Modified.PageTypeParameters[page]
		if !ok {
			continue
		}
		for name, param := range params {
			target, ok := dst[name]
			if !ok {
				continue
			}
			target.CurrentValue = param.CurrentValue
			dst[name] = target
		}
	}
	s.recomputeDirty()
}

// SaveSuccess installs the echoed parameter set.
func (s *PageParamsSession) SaveSuccess(resp *models.PageParametersResponse) {
	saved := resp.Clone()
	modified := resp.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.SaveError = ""
}

// SaveFailed records the error and leaves the working copy untouched.
func (s *PageParamsSession) SaveFailed(message string) {
	s.SaveError = message
}

// Reset discards pending edits.
func (s *PageParamsSession) Reset() {
	if s.Saved == nil {
		return
	}
	modified := s.Saved.Clone()
	s.Modified = &modified
	s.Dirty = false
}
