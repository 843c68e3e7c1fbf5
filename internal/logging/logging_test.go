package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", false)
	log.Info().Msg("hidden")
	log.Warn().Str("system", "wave").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"system":"wave"`) {
		t.Fatalf("expected structured field, got %s", out)
	}
}

func TestNewWithWriterUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud", false)
	log.Debug().Msg("debug")
	log.Info().Msg("info")
	if strings.Contains(buf.String(), "debug") || !strings.Contains(buf.String(), "info") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
