package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/score"
)

// CSVHeader is the first row of every CSV export.
const CSVHeader = "Type,Severity,Level,Law,Matches,Suggestion"

// Exporter renders reports. Now stamps JSON, text and HTML output; tests pin
// it to get byte-identical results.
type Exporter struct {
	Now func() time.Time
}

// NewExporter returns an Exporter on the wall clock.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export renders violations with the default exporter.
func Export(vs []scanner.Violation, format string) (string, error) {
	return NewExporter().Export(vs, format)
}

func (e *Exporter) now() time.Time {
	if e == nil || e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now().UTC()
}

// Export renders violations in format. The only error is
// *UnsupportedFormatError.
func (e *Exporter) Export(vs []scanner.Violation, format string) (string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	if vs == nil {
		vs = []scanner.Violation{}
	}
	switch f {
	case FormatJSON:
		return e.renderJSON(vs)
	case FormatCSV:
		return csvReport(vs), nil
	case FormatText:
		return e.renderText(vs), nil
	default:
		return e.renderHTML(vs)
	}
}

type jsonSummary struct {
	Count  int        `json:"count"`
	High   int        `json:"high"`
	Medium int        `json:"medium"`
	Low    int        `json:"low"`
	Score  int        `json:"score"`
	Risk   score.Risk `json:"risk"`
}

type jsonReport struct {
	Timestamp  string              `json:"timestamp"`
	Summary    jsonSummary         `json:"summary"`
	Violations []scanner.Violation `json:"violations"`
}

func (e *Exporter) renderJSON(vs []scanner.Violation) (string, error) {
	sum := scanner.Summarize(vs)
	doc := jsonReport{
		Timestamp: e.now().Format(time.RFC3339),
		Summary: jsonSummary{
			Count:  sum.Count,
			High:   sum.HighCount,
			Medium: sum.MediumCount,
			Low:    sum.LowCount,
			Score:  sum.Score,
			Risk:   sum.Risk,
		},
		Violations: vs,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}

func levelLabel(v scanner.Violation) string {
	if v.Level == scanner.LevelFederal {
		return "Federal"
	}
	return "State"
}

// csvReport is written by hand because the Matches column is always quoted,
// which encoding/csv cannot express.
func csvReport(vs []scanner.Violation) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteString("\n")
	for _, v := range vs {
		fields := []string{
			csvField(v.TypeName, false),
			csvField(string(v.Severity), false),
			csvField(levelLabel(v), false),
			csvField(v.Citation, false),
			csvField(v.Phrase, true),
			csvField(v.Suggestion, false),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func csvField(s string, forceQuote bool) string {
	if forceQuote || strings.ContainsAny(s, ",\"\r\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// group buckets violations by severity, keeping order within a tier.
type group struct {
	Severity   catalog.Severity
	Title      string
	Violations []scanner.Violation
}

func groupBySeverity(vs []scanner.Violation) []group {
	out := make([]group, 0, len(catalog.Severities))
	for _, sev := range catalog.Severities {
		g := group{Severity: sev, Title: strings.ToUpper(string(sev)) + " SEVERITY"}
		for _, v := range vs {
			if v.Severity == sev {
				g.Violations = append(g.Violations, v)
			}
		}
		if len(g.Violations) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func (e *Exporter) renderText(vs []scanner.Violation) string {
	sum := scanner.Summarize(vs)
	var b strings.Builder
	b.WriteString("FAIR HOUSING COMPLIANCE REPORT\n")
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "Generated: %s\n", e.now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Score: %d/100 (%s)\n", sum.Score, sum.Risk.Label)
	fmt.Fprintf(&b, "Violations: %d (high %d, medium %d, low %d)\n", sum.Count, sum.HighCount, sum.MediumCount, sum.LowCount)

	if sum.Count == 0 {
		b.WriteString("\nNo violations found.\n")
		return b.String()
	}
	for _, g := range groupBySeverity(vs) {
		fmt.Fprintf(&b, "\n%s (%d)\n", g.Title, len(g.Violations))
		b.WriteString(strings.Repeat("-", len(g.Title)) + "\n")
		for i, v := range g.Violations {
			fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, v.TypeName, levelLabel(v))
			fmt.Fprintf(&b, "   Law: %s\n", v.Citation)
			fmt.Fprintf(&b, "   Matches: %q\n", v.Phrase)
			fmt.Fprintf(&b, "   Suggestion: %s\n", v.Suggestion)
		}
	}
	return b.String()
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"level": levelLabel,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Fair Housing Compliance Report</title>
</head>
<body>
<h1>Fair Housing Compliance Report</h1>
<p class="generated">Generated: {{.Generated}}</p>
<p class="score" data-score="{{.Summary.Score}}" data-risk="{{.Summary.Risk.Level}}">Score: {{.Summary.Score}}/100 ({{.Summary.Risk.Label}})</p>
{{- if not .Groups}}
<p class="clean">No violations found.</p>
{{- end}}
{{- range .Groups}}
<section class="severity-{{.Severity}}">
<h2>{{.Title}} ({{len .Violations}})</h2>
<table>
<thead><tr><th>Type</th><th>Severity</th><th>Level</th><th>Law</th><th>Matches</th><th>Suggestion</th></tr></thead>
<tbody>
{{- range .Violations}}
<tr class="violation" data-rule="{{.RuleID}}"><td>{{.TypeName}}</td><td>{{.Severity}}</td><td>{{level .}}</td><td>{{.Citation}}</td><td class="match">{{.Phrase}}</td><td>{{.Suggestion}}</td></tr>
{{- end}}
</tbody>
</table>
</section>
{{- end}}
</body>
</html>
`))

func (e *Exporter) renderHTML(vs []scanner.Violation) (string, error) {
	data := struct {
		Generated string
		Summary   scanner.Summary
		Groups    []group
	}{
		Generated: e.now().Format(time.RFC3339),
		Summary:   scanner.Summarize(vs),
		Groups:    groupBySeverity(vs),
	}
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}
