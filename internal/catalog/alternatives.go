package catalog

import (
	"sort"
	"strings"
)

// Alternative maps one problematic phrase to compliant replacements. The
// first replacement is the one auto-fix applies.
type Alternative struct {
	Phrase       string   `json:"phrase" yaml:"phrase"`
	Replacements []string `json:"replacements" yaml:"replacements"`
	Category     ClassID  `json:"category" yaml:"category"`
	pattern      Pattern
}

// Primary is the replacement auto-fix uses.
func (a Alternative) Primary() string {
	return a.Replacements[0]
}

// Pattern is the compiled word-bounded matcher for the phrase.
func (a Alternative) Pattern() Pattern {
	return a.pattern
}

// Alternatives is the compliant-alternatives table, in definition order.
type Alternatives struct {
	entries []Alternative
	byKey   map[string]int
	// longest indexes entries by phrase length, longest first, ties in
	// definition order.
	longest []int
}

func normalizePhrase(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// newAlternatives validates the table: phrases must be non-empty and unique
// after normalization, every entry needs a replacement, and categories must be
// known to reg.
func newAlternatives(entries []Alternative, reg *Registry) (*Alternatives, error) {
	var p problems
	a := &Alternatives{byKey: make(map[string]int, len(entries))}

	for i, e := range entries {
		key := normalizePhrase(e.Phrase)
		if key == "" {
			p.addf("alternative #%d has empty phrase", i)
			continue
		}
		if _, dup := a.byKey[key]; dup {
			p.addf("duplicate alternative phrase %q", key)
			continue
		}
		var repl []string
		for _, r := range e.Replacements {
			if r = strings.Join(strings.Fields(r), " "); r != "" {
				repl = append(repl, r)
			}
		}
		if len(repl) == 0 {
			p.addf("alternative %q has no replacements", key)
			continue
		}
		if _, ok := reg.Class(e.Category); !ok {
			p.addf("alternative %q: unknown category %q", key, e.Category)
		}
		compiled, err := Literal(key).compile()
		if err != nil {
			p.addf("alternative %q: %v", key, err)
			continue
		}
		a.byKey[key] = len(a.entries)
		a.entries = append(a.entries, Alternative{Phrase: key, Replacements: repl, Category: e.Category, pattern: compiled})
	}

	if err := p.err(); err != nil {
		return nil, err
	}

	a.longest = make([]int, len(a.entries))
	for i := range a.longest {
		a.longest[i] = i
	}
	sort.SliceStable(a.longest, func(i, j int) bool {
		return len(a.entries[a.longest[i]].Phrase) > len(a.entries[a.longest[j]].Phrase)
	})
	return a, nil
}

// Entries returns the table in definition order.
func (a *Alternatives) Entries() []Alternative {
	out := make([]Alternative, len(a.entries))
	for i, e := range a.entries {
		e.Replacements = append([]string(nil), e.Replacements...)
		out[i] = e
	}
	return out
}

// Longest returns the table ordered by phrase length, longest first, so a
// phrase is always tried before any shorter phrase it contains.
func (a *Alternatives) Longest() []Alternative {
	out := make([]Alternative, len(a.longest))
	for i, idx := range a.longest {
		e := a.entries[idx]
		e.Replacements = append([]string(nil), e.Replacements...)
		out[i] = e
	}
	return out
}

// Lookup finds replacements for phrase. An exact match (case and whitespace
// insensitive) wins; otherwise the longest table phrase found on word
// boundaries inside the input. Nil means no entry matched.
func (a *Alternatives) Lookup(phrase string) []string {
	key := normalizePhrase(phrase)
	if key == "" {
		return nil
	}
	if i, ok := a.byKey[key]; ok {
		return append([]string(nil), a.entries[i].Replacements...)
	}
	for _, idx := range a.longest {
		e := a.entries[idx]
		if len(e.pattern.FindAll(key)) > 0 {
			return append([]string(nil), e.Replacements...)
		}
	}
	return nil
}
