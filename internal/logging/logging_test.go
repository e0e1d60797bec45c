package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/raysh454/fhscan/internal/logging"
)

type line struct {
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component"`
	Fields    map[string]any `json:"fields"`
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []line {
	t.Helper()
	var out []line
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var l line
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		out = append(out, l)
	}
	return out
}

func TestStdoutLogger_WritesJSONLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.NewStdoutLogger("scanner").WithWriter(&buf)

	l.Info("scan finished", logging.Field{Key: "count", Value: 2})

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Level != "info" || lines[0].Msg != "scan finished" || lines[0].Component != "scanner" {
		t.Errorf("unexpected line: %+v", lines[0])
	}
	if lines[0].Fields["count"] != float64(2) {
		t.Errorf("expected count field 2, got %v", lines[0].Fields["count"])
	}
}

func TestStdoutLogger_LevelFilter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.NewStdoutLogger("x").WithWriter(&buf).WithLevel(logging.LevelWarn)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")

	if got := len(decodeLines(t, &buf)); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestStdoutLogger_WithComponentAndFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := logging.NewStdoutLogger("root").WithWriter(&buf)
	child := base.With(logging.Field{Key: "component", Value: "batch"}, logging.Field{Key: "job_id", Value: "j1"})

	child.Warn("slow item", logging.Field{Key: "error", Value: errors.New("boom")})

	lines := decodeLines(t, &buf)
	if lines[0].Component != "batch" {
		t.Errorf("expected component batch, got %q", lines[0].Component)
	}
	if lines[0].Fields["job_id"] != "j1" {
		t.Errorf("expected persistent job_id field, got %v", lines[0].Fields)
	}
	if lines[0].Fields["error"] != "boom" {
		t.Errorf("expected error rendered as string, got %v", lines[0].Fields["error"])
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]logging.Level{
		"debug": logging.LevelDebug,
		"INFO":  logging.LevelInfo,
		"":      logging.LevelInfo,
		"warn":  logging.LevelWarn,
		"error": logging.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()
	l := logging.OrNop(nil)
	l.Info("nothing happens")
	if _, ok := l.(logging.NopLogger); !ok {
		t.Errorf("expected NopLogger, got %T", l)
	}
}
