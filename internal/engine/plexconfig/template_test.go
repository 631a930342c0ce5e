package plexconfig

import "testing"

func TestInsertTemplateParameter(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		selStart  int
		selEnd    int
		param     string
		expected  string
		wantCaret int
	}{
		{"At Cursor", "Hello !", 6, 6, "Name", "Hello {{.Name}}!", 15},
		{"Replace Selection", "Hello world!", 6, 11, "Name", "Hello {{.Name}}!", 15},
		{"At Start", "world", 0, 0, "Greeting", "{{.Greeting}}world", 13},
		{"At End", "Code: ", 6, 6, "Code", "Code: {{.Code}}", 15},
		{"Clamped Bounds", "ab", -3, 99, "X", "{{.X}}", 6},
		{"Empty Value", "", 0, 0, "Link", "{{.Link}}", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, caret := InsertTemplateParameter(tt.value, tt.selStart, tt.selEnd, tt.param)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
			if caret != tt.wantCaret {
				t.Errorf("Expected caret %d, got %d", tt.wantCaret, caret)
			}
		})
	}
}
