package scanner

import (
	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/score"
)

// Law levels reported on a violation.
const (
	LevelFederal = "federal"
	LevelState   = "state"
)

// Violation is one flagged phrase. Phrase keeps the casing of the input.
type Violation struct {
	Type          catalog.ClassID  `json:"type"`
	TypeName      string           `json:"type_name"`
	Phrase        string           `json:"phrase"`
	Severity      catalog.Severity `json:"severity"`
	Citation      string           `json:"citation"`
	Suggestion    string           `json:"suggestion"`
	Jurisdictions []string         `json:"jurisdictions,omitempty"`
	Protected     bool             `json:"protected"`
	Level         string           `json:"level"`
	RuleID        string           `json:"rule_id"`
	// Offset is the byte offset of the phrase in the scanned text.
	Offset int `json:"offset"`
}

// Tier implements score.Graded.
func (v Violation) Tier() catalog.Severity {
	return v.Severity
}

// Summary is the quick-scan view of one input.
type Summary struct {
	ID           string      `json:"id,omitempty"`
	Jurisdiction string      `json:"jurisdiction,omitempty"`
	IsCompliant  bool        `json:"is_compliant"`
	Count        int         `json:"count"`
	HasHighRisk  bool        `json:"has_high_risk"`
	HighCount    int         `json:"high_count"`
	MediumCount  int         `json:"medium_count"`
	LowCount     int         `json:"low_count"`
	Score        int         `json:"score"`
	Risk         score.Risk  `json:"risk"`
	Violations   []Violation `json:"violations"`
}

// Summarize builds a Summary from an already ranked violation list.
func Summarize(vs []Violation) Summary {
	if vs == nil {
		vs = []Violation{}
	}
	c := score.Tally(vs)
	return Summary{
		IsCompliant: len(vs) == 0,
		Count:       len(vs),
		HasHighRisk: c.High > 0,
		HighCount:   c.High,
		MediumCount: c.Medium,
		LowCount:    c.Low,
		Score:       score.FromCounts(c),
		Risk:        score.RiskFromCounts(c),
		Violations:  vs,
	}
}
