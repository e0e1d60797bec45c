package catalog

import (
	"fmt"
	"strings"
)

// Severity is a rule's risk tier.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Severities lists the tiers from most to least severe.
var Severities = []Severity{SeverityHigh, SeverityMedium, SeverityLow}

// Rank orders severities for sorting: high=0, medium=1, low=2.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// Valid reports whether s is one of the three tiers.
func (s Severity) Valid() bool {
	return s.Rank() < 3
}

// Rule flags one discriminatory phrasing pattern.
type Rule struct {
	ID         string
	Pattern    Pattern
	Category   ClassID
	Severity   Severity
	Citation   string
	Suggestion string
	// Jurisdictions, when non-empty, limits the rule to these codes.
	Jurisdictions []string
}

// Restricted reports whether the rule only applies in listed jurisdictions.
func (r Rule) Restricted() bool {
	return len(r.Jurisdictions) > 0
}

// AllowsJurisdiction reports whether code is in the restriction list.
// Unrestricted rules allow every code.
func (r Rule) AllowsJurisdiction(code string) bool {
	if !r.Restricted() {
		return true
	}
	code = NormalizeCode(code)
	for _, j := range r.Jurisdictions {
		if j == code {
			return true
		}
	}
	return false
}

// compileRules validates and compiles rules in order. Duplicate ids, unknown
// classes or jurisdictions, bad severities and bad patterns are all reported.
func compileRules(rules []Rule, reg *Registry) ([]Rule, error) {
	var p problems
	seen := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))

	for i, r := range rules {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			p.addf("rule #%d has empty id", i)
			continue
		}
		if seen[id] {
			p.addf("duplicate rule id %q", id)
			continue
		}
		seen[id] = true

		if _, ok := reg.Class(r.Category); !ok {
			p.addf("rule %s: unknown category %q", id, r.Category)
		}
		if !r.Severity.Valid() {
			p.addf("rule %s: invalid severity %q", id, r.Severity)
		}
		if strings.TrimSpace(r.Citation) == "" {
			p.addf("rule %s: empty citation", id)
		}
		jurisdictions := make([]string, 0, len(r.Jurisdictions))
		for _, j := range r.Jurisdictions {
			code := NormalizeCode(j)
			if !reg.Known(code) {
				p.addf("rule %s: unknown jurisdiction %q", id, j)
			}
			jurisdictions = append(jurisdictions, code)
		}

		compiled, err := r.Pattern.compile()
		if err != nil {
			p.addf("rule %s: %v", id, err)
			continue
		}

		r.ID = id
		r.Pattern = compiled
		r.Jurisdictions = jurisdictions
		out = append(out, r)
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// String is used in debug logs.
func (r Rule) String() string {
	return fmt.Sprintf("%s[%s/%s]", r.ID, r.Category, r.Severity)
}
