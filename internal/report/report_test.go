package report_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/report"
	"github.com/raysh454/fhscan/internal/scanner"
)

var fixed = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func exporter() *report.Exporter {
	return &report.Exporter{Now: func() time.Time { return fixed }}
}

func sample(t *testing.T) []scanner.Violation {
	t.Helper()
	s := scanner.New(catalog.MustDefault(), nil)
	vs := s.Scan(`No kids. "Cozy" master bedroom, perfect for couples. No Section 8.`, "CA")
	require.Len(t, vs, 4)
	return vs
}

// ─── Formats ─────────────────────────────────────────────────────────────

func TestParseFormat(t *testing.T) {
	t.Parallel()
	f, err := report.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)

	_, err = report.ParseFormat("pdf")
	var ufe *report.UnsupportedFormatError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "pdf", ufe.Requested)
	assert.Len(t, ufe.Supported, 4)
	assert.Contains(t, err.Error(), `"pdf"`)
}

func TestFormats_SortedWithMetadata(t *testing.T) {
	t.Parallel()
	fs := report.Formats()
	require.Len(t, fs, 4)
	assert.Equal(t, report.FormatCSV, fs[0].Name)
	for _, f := range fs {
		assert.NotEmpty(t, f.MIMEType)
		assert.True(t, strings.HasPrefix(f.Extension, "."))
	}
}

func TestFormats_CallersCannotMutateRegistry(t *testing.T) {
	t.Parallel()
	fs := report.Formats()
	fs[0].MIMEType = "application/x-changed"

	info, ok := report.GetFormatInfo(report.FormatCSV)
	require.True(t, ok)
	assert.Equal(t, "text/csv; charset=utf-8", info.MIMEType)
	assert.Equal(t, "text/csv; charset=utf-8", report.Formats()[0].MIMEType)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(nil, "xml")
	assert.Empty(t, out)
	var ufe *report.UnsupportedFormatError
	assert.True(t, errors.As(err, &ufe))
}

// ─── JSON ────────────────────────────────────────────────────────────────

func TestExportJSON_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, vs := range [][]scanner.Violation{nil, {}, sample(t)} {
		out, err := exporter().Export(vs, "json")
		require.NoError(t, err)

		var doc struct {
			Timestamp  string              `json:"timestamp"`
			Violations []scanner.Violation `json:"violations"`
			Summary    struct {
				Count int `json:"count"`
				Score int `json:"score"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Len(t, doc.Violations, len(vs))
		assert.Equal(t, len(vs), doc.Summary.Count)
		assert.Equal(t, "2026-03-01T12:00:00Z", doc.Timestamp)
		if len(vs) > 0 {
			assert.Equal(t, vs, doc.Violations)
		}
	}
}

func TestExport_Deterministic(t *testing.T) {
	t.Parallel()
	vs := sample(t)
	for _, f := range []string{"json", "csv", "text", "html"} {
		a, err := exporter().Export(vs, f)
		require.NoError(t, err)
		b, err := exporter().Export(vs, f)
		require.NoError(t, err)
		assert.Equal(t, a, b, f)
	}
}

// ─── CSV ─────────────────────────────────────────────────────────────────

func TestExportCSV(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(sample(t), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, report.CSVHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `Familial Status,high,Federal,"Fair Housing Act, 42 U.S.C. §3604(c)","No kids",`), lines[1])

	var soi string
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "Source of Income") {
			soi = l
		}
	}
	assert.Contains(t, soi, ",State,")
	assert.Contains(t, soi, `"No Section 8"`)
}

func TestExportCSV_EmptyHasHeaderOnly(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(nil, "CSV")
	require.NoError(t, err)
	assert.Equal(t, report.CSVHeader+"\n", out)
}

// ─── Text ────────────────────────────────────────────────────────────────

func TestExportText_GroupsBySeverity(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(sample(t), "text")
	require.NoError(t, err)

	hi := strings.Index(out, "HIGH SEVERITY (2)")
	med := strings.Index(out, "MEDIUM SEVERITY (1)")
	low := strings.Index(out, "LOW SEVERITY (1)")
	require.True(t, hi > 0 && med > hi && low > med, out)
	assert.Contains(t, out, "Score: 35/100 (High Risk)")
	assert.Contains(t, out, `Matches: "master bedroom"`)
}

func TestExportText_Clean(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(nil, "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No violations found.")
	assert.Contains(t, out, "Score: 100/100 (Compliant)")
}

// ─── HTML ────────────────────────────────────────────────────────────────

func TestExportHTML_Structure(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(sample(t), "html")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 4, doc.Find("tr.violation").Length())
	assert.Equal(t, 2, doc.Find("section.severity-high tr.violation").Length())
	assert.Equal(t, 1, doc.Find("section.severity-medium tr.violation").Length())
	assert.Equal(t, 1, doc.Find("section.severity-low tr.violation").Length())

	score, _ := doc.Find("p.score").Attr("data-score")
	assert.Equal(t, "35", score)
	assert.Equal(t, "No kids", doc.Find("section.severity-high td.match").First().Text())
	assert.Equal(t, 0, doc.Find("p.clean").Length())
}

func TestExportHTML_EscapesInput(t *testing.T) {
	t.Parallel()
	vs := []scanner.Violation{{
		TypeName: "Sex", Phrase: "<script>alert(1)</script>", Severity: catalog.SeverityLow, Level: scanner.LevelFederal,
	}}
	out, err := exporter().Export(vs, "html")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "<script>alert(1)</script>", doc.Find("td.match").Text())
}

func TestExportHTML_Clean(t *testing.T) {
	t.Parallel()
	out, err := exporter().Export(nil, "html")
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("p.clean").Length())
	assert.Equal(t, 0, doc.Find("section").Length())
}
