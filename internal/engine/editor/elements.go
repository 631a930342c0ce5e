package editor

import (
	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/platform/models"
)

// ElementsSession drives the message-template editing flow, one instance per
// transport (email or SMS).
type ElementsSession struct {
	Saved    *models.TenantAppMessageElements
	Modified *models.TenantAppMessageElements
	Dirty    bool

	SelectedAppID       string
	SelectedMessageType string

	// AppToClone records the source of the last clone. It is set whenever
	// the source app exists, even when the clone produced no visible change.
	AppToClone string

	SaveError string
}

func NewElementsSession() *ElementsSession {
	return &ElementsSession{}
}

func (s *ElementsSession) recomputeDirty() {
	s.Dirty = !serializedEqual(s.Modified, s.Saved)
}

// FetchSuccess installs a freshly fetched element set.
func (s *ElementsSession) FetchSuccess(elements *models.TenantAppMessageElements) {
	saved := elements.Clone()
	modified := elements.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.AppToClone = ""
	s.SaveError = ""
}

// SelectApp focuses one app, discarding pending edits.
func (s *ElementsSession) SelectApp(appID string) {
	s.Reset()
	s.SelectedAppID = appID
}

// SelectMessageType focuses one message type, discarding pending edits.
func (s *ElementsSession) SelectMessageType(messageType string) {
	s.Reset()
	s.SelectedMessageType = messageType
}

// ModifyElement sets one element's custom value in the working copy.
func (s *ElementsSession) ModifyElement(appID, messageType, elementName, customValue string) {
	if s.Modified == nil {
		return
	}
	plexconfig.ModifyMessageElement(s.Modified, appID, messageType, elementName, customValue)
	s.recomputeDirty()
}

// CloneSettings copies the source app's message settings onto the selected
// app. AppToClone records the source when it exists and clears otherwise;
// dirtiness is recomputed against the persisted snapshot, so cloning an
// identical app leaves the session clean while still recording the source.
func (s *ElementsSession) CloneSettings(sourceAppID string) {
	if s.Modified == nil || s.SelectedAppID == "" {
		return
	}
	if plexconfig.CloneMessageSettings(s.Modified, s.SelectedAppID, sourceAppID) {
		s.AppToClone = sourceAppID
	} else {
		s.AppToClone = ""
	}
	s.recomputeDirty()
}

// SaveSuccess installs the echoed element set and clears the clone marker.
func (s *ElementsSession) SaveSuccess(elements *models.TenantAppMessageElements) {
	saved := elements.Clone()
	modified := elements.Clone()
	s.Saved = &saved
	s.Modified = &modified
	s.Dirty = false
	s.AppToClone = ""
	s.SaveError = ""
}

// SaveFailed records the error and leaves the working copy untouched.
func (s *ElementsSession) SaveFailed(message string) {
	s.SaveError = message
}

// Reset discards pending edits.
func (s *ElementsSession) Reset() {
	if s.Saved == nil {
		return
	}
	modified := s.Saved.Clone()
	s.Modified = &modified
	s.Dirty = false
	s.AppToClone = ""
}
