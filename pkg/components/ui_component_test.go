package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		state UIState
		value int
		name  string
	}{
		{UINormal, 0, "normal"},
		{UIHovered, 1, "hovered"},
		{UIClicked, 2, "clicked"},
		{UIDisabled, 3, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.name {
				t.Errorf("String: got %q, want %q", tt.state.String(), tt.name)
			}
		})
	}
}
