package scanner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/score"
	"github.com/raysh454/fhscan/internal/testutil"
)

func newScanner(t *testing.T) *scanner.Scanner {
	t.Helper()
	return scanner.New(catalog.MustDefault(), &testutil.DummyLogger{})
}

func categories(vs []scanner.Violation) map[catalog.ClassID]int {
	out := make(map[catalog.ClassID]int)
	for _, v := range vs {
		out[v.Type]++
	}
	return out
}

// ─── Basic behavior ──────────────────────────────────────────────────────

func TestScan_EmptyInput(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	for _, in := range []string{"", "   ", "\n\t"} {
		got := s.Scan(in, "")
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestScan_NoFalsePositives(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	text := "Beautiful 3-bedroom home with hardwood floors and a large backyard."
	for _, j := range []string{"", "CA", "NY", "FEDERAL"} {
		assert.Empty(t, s.Scan(text, j), "jurisdiction %q", j)
	}
}

func TestScan_FamilialStatus(t *testing.T) {
	t.Parallel()
	got := newScanner(t).Scan("No children allowed. Adults only.", "")
	require.NotEmpty(t, got)

	var found bool
	for _, v := range got {
		if v.Type == catalog.FamilialStatus && v.Severity == catalog.SeverityHigh {
			found = true
			assert.Equal(t, "Familial Status", v.TypeName)
			assert.Equal(t, catalog.FederalCitation, v.Citation)
			assert.Equal(t, scanner.LevelFederal, v.Level)
			assert.True(t, v.Protected)
		}
	}
	assert.True(t, found)
	assert.Equal(t, "No children allowed", got[0].Phrase, "original casing kept")
	assert.Equal(t, 0, got[0].Offset)
}

// ─── Jurisdiction gating ─────────────────────────────────────────────────

func TestScan_JurisdictionGating(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	text := "No Section 8 accepted."

	assert.Zero(t, categories(s.Scan(text, "AL"))[catalog.SourceOfIncome])

	ca := s.Scan(text, "CA")
	require.Equal(t, 1, categories(ca)[catalog.SourceOfIncome])
	assert.True(t, ca[0].Protected)
	assert.Equal(t, scanner.LevelState, ca[0].Level)
	assert.Contains(t, ca[0].Citation, "FEHA", "state citation resolved")
}

func TestScan_NoJurisdictionRunsStateRulesUnprotected(t *testing.T) {
	t.Parallel()
	got := newScanner(t).Scan("No Section 8 accepted.", "")
	require.Len(t, got, 1)
	assert.Equal(t, catalog.SourceOfIncome, got[0].Type)
	assert.False(t, got[0].Protected)
	assert.Equal(t, catalog.StateLawCitation, got[0].Citation)
}

func TestScan_UnknownJurisdictionIsFederalOnly(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	got := s.Scan("No Section 8. No kids.", "ZZ")
	require.Len(t, got, 1)
	assert.Equal(t, catalog.FamilialStatus, got[0].Type)
}

func TestScan_RestrictedRule(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	text := "Native English speakers preferred."

	assert.Len(t, s.Scan(text, "CA"), 1)
	assert.Empty(t, s.Scan(text, "NY"), "rule restricted to CA")
	assert.Len(t, s.Scan(text, ""), 1)
}

func TestApplies(t *testing.T) {
	t.Parallel()
	reg := catalog.MustDefault().Registry
	fed := catalog.Rule{Category: catalog.Race}
	soi := catalog.Rule{Category: catalog.SourceOfIncome}
	caOnly := catalog.Rule{Category: catalog.PrimaryLanguage, Jurisdictions: []string{"CA"}}

	cases := []struct {
		name          string
		rule          catalog.Rule
		code          string
		run, protects bool
	}{
		{"federal, none", fed, "", true, true},
		{"federal, AL", fed, "AL", true, true},
		{"state class, none", soi, "", true, false},
		{"state class, AL", soi, "AL", false, false},
		{"state class, CA", soi, "CA", true, true},
		{"restricted, CA", caOnly, "CA", true, true},
		{"restricted, NY", caOnly, "NY", false, false},
		{"restricted, none", caOnly, "", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			run, protected := scanner.Applies(tc.rule, tc.code, reg.ProtectionSet(tc.code))
			assert.Equal(t, tc.run, run)
			assert.Equal(t, tc.protects, protected)
		})
	}
}

// ─── Dedup and ordering ──────────────────────────────────────────────────

func TestScan_DedupsRepeatedPhrase(t *testing.T) {
	t.Parallel()
	got := newScanner(t).Scan("Adults only. We mean it: ADULTS ONLY.", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Adults only", got[0].Phrase)
}

func TestScan_SeverityOrdering(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	text := "Huge master bedroom, man cave, perfect for couples. No kids. Christian home. Whites only."
	got := s.Scan(text, "CA")
	require.NotEmpty(t, got)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Severity.Rank(), got[i].Severity.Rank(), "at %d: %+v", i, got)
	}
	assert.Equal(t, catalog.SeverityHigh, got[0].Severity)
	assert.Equal(t, "familial-no-children", got[0].RuleID, "catalog order within tier")
	assert.Equal(t, catalog.SeverityLow, got[len(got)-1].Severity)
}

func TestScan_Deterministic(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	texts := []string{
		"No children. Adults only. Master suite. No Section 8. Young professionals wanted.",
		"His and hers closets, handicap accessible entrance, exclusive neighborhood.",
		"",
	}
	for _, text := range texts {
		for _, j := range []string{"", "CA", "AL", "zz"} {
			assert.Equal(t, s.Scan(text, j), s.Scan(text, j))
		}
	}
}

// ─── Quick scan ──────────────────────────────────────────────────────────

func TestQuickScan(t *testing.T) {
	t.Parallel()
	s := newScanner(t)

	clean := s.QuickScan("Sunny two-bedroom near the park.", "")
	assert.True(t, clean.IsCompliant)
	assert.Zero(t, clean.Count)
	assert.Equal(t, 100, clean.Score)
	assert.Equal(t, score.Compliant, clean.Risk.Level)
	assert.NotNil(t, clean.Violations)

	sum := s.QuickScan("No kids. Master bedroom upstairs.", "ca")
	assert.False(t, sum.IsCompliant)
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.HasHighRisk)
	assert.Equal(t, 1, sum.HighCount)
	assert.Equal(t, 0, sum.MediumCount)
	assert.Equal(t, 1, sum.LowCount)
	assert.Equal(t, 70, sum.Score)
	assert.Equal(t, score.High, sum.Risk.Level)
	assert.Equal(t, "CA", sum.Jurisdiction)
	assert.Equal(t, sum.Count, sum.HighCount+sum.MediumCount+sum.LowCount)
}

func TestStateProtections(t *testing.T) {
	t.Parallel()
	s := newScanner(t)
	assert.Len(t, s.StateProtections(""), 7)
	assert.Greater(t, len(s.StateProtections("CA")), 7)
}

func TestNew_LogsConstruction(t *testing.T) {
	t.Parallel()
	l := &testutil.DummyLogger{}
	scanner.New(catalog.MustDefault(), l)
	assert.Contains(t, strings.Join(l.Infos, "\n"), "scanner constructed")
}
