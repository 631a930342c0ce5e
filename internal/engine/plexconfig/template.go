package plexconfig

// InsertTemplateParameter splices a template reference for the named
// parameter into value, replacing the [selStart, selEnd) selection. Returns
// the new value and the caret position just after the inserted reference.
// Out-of-range bounds are clamped.
func InsertTemplateParameter(value string, selStart, selEnd int, paramName string) (string, int) {
	if selStart < 0 {
		selStart = 0
	}
	if selStart > len(value) {
		selStart = len(value)
	}
	if selEnd < selStart {
		selEnd = selStart
	}
	if selEnd > len(value) {
		selEnd = len(value)
	}
	ref := "{{." + paramName + "}}"
	out := value[:selStart] + ref + value[selEnd:]
	return out, selStart + len(ref)
}
