package cycle

import (
	"testing"
	"time"
)

func TestKeymapLookup(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"p", KeyPause},
		{"q", KeyQuit},
		{"x", KeyNone},
		{"", KeyNone},
		{"P", KeyNone},
	}

	for _, tt := range tests {
		if got := DefaultKeymap.Lookup(tt.in); got != tt.want {
			t.Errorf("lookup %q: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestFPSInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{30, 33 * time.Millisecond},
		{12, 83 * time.Millisecond},
		{60, 17 * time.Millisecond},
		{1, time.Second},
	}

	for _, tt := range tests {
		if got := FPSInterval(tt.fps); got != tt.want {
			t.Errorf("fps %d: expected %v, got %v", tt.fps, tt.want, got)
		}
	}
}
