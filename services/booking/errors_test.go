package booking

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	coded := NewError(CodeSlotUnavailable, "taken at %s", "10:00")
	if CodeOf(coded) != CodeSlotUnavailable {
		t.Errorf("CodeOf(coded) = %q", CodeOf(coded))
	}
	if coded.Error() != "slot_unavailable: taken at 10:00" {
		t.Errorf("Error() = %q", coded.Error())
	}

	if CodeOf(errors.New("plain")) != "" {
		t.Error("plain errors must have no code")
	}
	if CodeOf(nil) != "" {
		t.Error("nil must have no code")
	}
	// Wrapping strips the code: coded errors are returned bare by the services.
	if CodeOf(fmt.Errorf("context: %w", coded)) != "" {
		t.Error("wrapped coded errors are treated as plain")
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{2500, "$25.00"},
		{1550, "$15.50"},
		{5, "$0.05"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.cents); got != tt.want {
			t.Errorf("formatPrice(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
