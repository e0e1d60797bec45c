// Package scanner evaluates listing text against the rule catalog and returns
// deduplicated violations ranked by severity.
package scanner

import (
	"sort"
	"strings"

	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/logging"
)

// Scanner is safe for concurrent use; it holds only the read-only catalog.
type Scanner struct {
	cat    *catalog.Catalog
	logger logging.Logger
}

// New returns a Scanner over cat. A nil logger discards output.
func New(cat *catalog.Catalog, logger logging.Logger) *Scanner {
	l := logging.OrNop(logger).With(logging.Field{Key: "component", Value: "scanner"})
	l.Info("scanner constructed",
		logging.Field{Key: "rules", Value: cat.Len()},
		logging.Field{Key: "jurisdictions", Value: len(cat.Registry.Jurisdictions())})
	return &Scanner{cat: cat, logger: l}
}

// Catalog exposes the catalog the scanner evaluates.
func (s *Scanner) Catalog() *catalog.Catalog {
	return s.cat
}

// Applies is the single jurisdiction gate for a rule. jurisdiction must be
// normalized; "" means none was given. It reports whether the rule runs and
// whether its category is protected in the jurisdiction.
//
// A restricted rule runs only in its listed jurisdictions when one is given.
// Jurisdiction-only categories are suppressed when a jurisdiction is given and
// does not protect them; with no jurisdiction they run, reported unprotected.
func Applies(r catalog.Rule, jurisdiction string, protections catalog.ProtectionSet) (run, protected bool) {
	protected = protections.Has(r.Category)
	if jurisdiction == "" {
		return true, protected
	}
	if !r.AllowsJurisdiction(jurisdiction) {
		return false, protected
	}
	if !catalog.IsFederal(r.Category) && !protected {
		return false, false
	}
	return true, protected
}

// Scan returns the violations in text, high severity first and catalog order
// within a tier. Empty text and unknown jurisdictions never error: they yield
// no violations and federal-only evaluation respectively.
func (s *Scanner) Scan(text, jurisdiction string) []Violation {
	out := []Violation{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	code := catalog.NormalizeCode(jurisdiction)
	reg := s.cat.Registry
	protections := reg.ProtectionSet(code)
	seen := make(map[string]bool)

	for i := 0; i < s.cat.Len(); i++ {
		r := s.cat.Rule(i)
		run, protected := Applies(r, code, protections)
		if !run {
			continue
		}
		for _, loc := range r.Pattern.FindAll(text) {
			if loc[0] == loc[1] {
				continue
			}
			phrase := text[loc[0]:loc[1]]
			key := strings.ToLower(strings.TrimSpace(phrase))
			if seen[key] {
				continue
			}
			seen[key] = true

			level := LevelState
			if catalog.IsFederal(r.Category) {
				level = LevelFederal
			}
			out = append(out, Violation{
				Type:          r.Category,
				TypeName:      reg.ClassName(r.Category),
				Phrase:        phrase,
				Severity:      r.Severity,
				Citation:      reg.ResolveCitation(r.Citation, code),
				Suggestion:    r.Suggestion,
				Jurisdictions: append([]string(nil), r.Jurisdictions...),
				Protected:     protected,
				Level:         level,
				RuleID:        r.ID,
				Offset:        loc[0],
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// QuickScan summarizes Scan.
func (s *Scanner) QuickScan(text, jurisdiction string) Summary {
	sum := Summarize(s.Scan(text, jurisdiction))
	sum.Jurisdiction = catalog.NormalizeCode(jurisdiction)
	return sum
}

// StateProtections lists the classes protected in jurisdiction, federal
// baseline first.
func (s *Scanner) StateProtections(jurisdiction string) []catalog.ProtectedClass {
	return s.cat.Registry.ProtectionsFor(jurisdiction)
}
