package cli_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fhscan/internal/cli"
)

type harness struct {
	home, work, config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{home: t.TempDir(), work: t.TempDir()}
	h.config = filepath.Join(h.work, "test.yaml")
	body := fmt.Sprintf("storage:\n  root: %s\n", filepath.Join(h.work, "data"))
	require.NoError(t, os.WriteFile(h.config, []byte(body), 0o644))
	return h
}

func (h *harness) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(cli.Options{HomeDir: h.home, WorkDir: h.work})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", h.config}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// ─── scan ──────────────────────────────────────────────────────────────

func TestScan_TextReport(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "", "scan", "-j", "CA", "No kids. Master bedroom upstairs.")
	require.NoError(t, err)
	assert.Contains(t, out, "HIGH SEVERITY (1)")
	assert.Contains(t, out, "LOW SEVERITY (1)")
	assert.Contains(t, out, "Score: 70/100")
}

func TestScan_FromStdinAsCSV(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "Adults only building.\n", "scan", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Type,Severity,Level,Law,Matches,Suggestion", lines[0])
}

func TestScan_OutFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "report.html")

	out, errOut, err := h.run(t, "", "scan", "-f", "html", "-o", path, "No kids.")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}

func TestScan_FailFlag(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run(t, "", "scan", "--fail", "No kids.")
	assert.ErrorIs(t, err, cli.ErrViolationsFound)

	_, _, err = h.run(t, "", "scan", "--fail", "Sunny two bedroom near the park.")
	assert.NoError(t, err)
}

func TestScan_BadFormat(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run(t, "", "scan", "-f", "pdf", "No kids.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestScan_URL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><p class="description">Perfect for a single professional. No wheelchairs.</p></body></html>`)
	}))
	defer ts.Close()

	h := newHarness(t)
	out, _, err := h.run(t, "", "scan", "--url", ts.URL+"/listing/7", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"violations"`)
	assert.Contains(t, out, "disability")

	_, _, err = h.run(t, "", "scan", "--url", ts.URL, "extra text")
	assert.Error(t, err)
}

// ─── batch, fix ────────────────────────────────────────────────────────

func TestBatch(t *testing.T) {
	h := newHarness(t)
	file := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(file, []byte(`["No kids.", {"id": "b", "text": "Nice yard."}]`), 0o644))

	out, _, err := h.run(t, "", "batch", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "b"`)
	assert.Contains(t, out, `"is_compliant": true`)

	out, _, err = h.run(t, `{"items": ["No kids."]}`, "batch", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"is_compliant": false`)
}

func TestFix(t *testing.T) {
	h := newHarness(t)

	out, errOut, err := h.run(t, "", "fix", "--diff", "Huge", "master", "bedroom.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Huge primary bedroom.\n"))
	assert.Contains(t, out, "@@")
	assert.Contains(t, errOut, `replaced "master bedroom" with "primary bedroom" (1x)`)
}

// ─── lookups ───────────────────────────────────────────────────────────

func TestProtections(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "", "protections", "ca")
	require.NoError(t, err)
	assert.Contains(t, out, "source_of_income")

	out, _, err = h.run(t, "", "protections", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "California")
	assert.Equal(t, 53, strings.Count(out, "\n"), "header plus 52 jurisdictions")
}

func TestAlternatives(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "", "alternatives", "man", "cave")
	require.NoError(t, err)
	assert.Equal(t, "bonus room\nden\nrecreation room\n", out)

	_, _, err = h.run(t, "", "alternatives", "sunroom")
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run(t, "", "scan", "-j", "NY", "No kids.")
	require.NoError(t, err)

	out, _, err := h.run(t, "", "history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "NY")
	assert.Contains(t, lines[1], "cli")
}

// ─── config, version ───────────────────────────────────────────────────

func TestConfigShowAndInit(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "listen_addr:")
	assert.Contains(t, out, filepath.Join(h.work, "data"))

	out, _, err = h.run(t, "", "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, strings.TrimSpace(out))
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte("batch:\n  max_concurrency: -1\n"), 0o644))

	_, _, err := h.run(t, "", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_concurrency")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "fhscan version "+cli.Version+"\n", out)
}
