package game

import (
	"strings"
	"testing"
	"time"
)

func TestWindowTitle(t *testing.T) {
	got := windowTitle(58, 16500*time.Microsecond, false)
	if want := "Meadow - 58 fps (16.50 ms)"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}

	if got := windowTitle(60, time.Millisecond, true); !strings.HasSuffix(got, " - wind") {
		t.Errorf("title with wind = %q", got)
	}
}
