package plexconfig

import "plexconsole/internal/platform/models"

// ModifyMessageElement sets the custom value of one element for one app and
// message type. Unknown app or message-type ids are a no-op; the default
// value is never touched.
func ModifyMessageElement(elements *models.TenantAppMessageElements, appID, messageType, elementName, customValue string) {
	for i := range elements.AppMessageElements {
		app := &elements.AppMessageElements[i]
		if app.AppID != appID {
			continue
		}
		mt, ok := app.MessageTypeMessageElements[messageType]
		if !ok {
			return
		}
		el, ok := mt.MessageElements[elementName]
		if !ok {
			return
		}
		el.CustomValue = customValue
		mt.MessageElements[elementName] = el
		app.MessageTypeMessageElements[messageType] = mt
		return
	}
}

// CloneMessageSettings deep-copies the source app's message settings onto the
// target app. Returns false without modifying anything when either app is
// missing.
func CloneMessageSettings(elements *models.TenantAppMessageElements, targetAppID, sourceAppID string) bool {
	var source *models.AppMessageElement
	for i := range elements.AppMessageElements {
		if elements.AppMessageElements[i].AppID == sourceAppID {
			source = &elements.AppMessageElements[i]
			break
		}
	}
	if source == nil {
		return false
	}
	for i := range elements.AppMessageElements {
		if elements.AppMessageElements[i].AppID == targetAppID {
			cloned := source.Clone()
			cloned.AppID = targetAppID
			elements.AppMessageElements[i] = cloned
			return true
		}
	}
	return false
}

// ElementValue returns the effective value of a message element: the custom
// value when set, otherwise the default.
func ElementValue(el models.MessageElement) string {
	if el.CustomValue != "" {
		return el.CustomValue
	}
	return el.DefaultValue
}

// FindAppMessageElements returns the element set for one app, or nil.
func FindAppMessageElements(elements *models.TenantAppMessageElements, appID string) *models.AppMessageElement {
	for i := range elements.AppMessageElements {
		if elements.AppMessageElements[i].AppID == appID {
			return &elements.AppMessageElements[i]
		}
	}
	return nil
}
