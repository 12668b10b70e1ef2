package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true},
		{name: "info", level: "info", wantDebug: false, wantInfo: true},
		{name: "warn", level: "warn", wantDebug: false, wantInfo: false},
		{name: "empty_defaults_to_info", level: "", wantDebug: false, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			logger.Debug().Msg("debug-line")
			logger.Info().Str("control", "turn_left").Msg("info-line")

			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tt.wantDebug {
				t.Errorf("debug written = %v, expected %v; output %q", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info-line"); got != tt.wantInfo {
				t.Errorf("info written = %v, expected %v; output %q", got, tt.wantInfo, out)
			}
			if tt.wantInfo && !strings.Contains(out, "control=turn_left") {
				t.Errorf("expected field in output, got %q", out)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
