package catalog

import (
	"sort"
	"strings"
)

// FederalCode is the sentinel jurisdiction meaning "federal law only".
const FederalCode = "FEDERAL"

// StateLawCitation is the generic citation placeholder used by rules for
// jurisdiction-only classes. ResolveCitation swaps it for the statutes of the
// requested jurisdiction.
const StateLawCitation = "State and local fair housing law"

// FederalCitation is the citation for advertising under the Fair Housing Act.
const FederalCitation = "Fair Housing Act, 42 U.S.C. §3604(c)"

// JurisdictionProfile describes the classes a jurisdiction protects on top of
// the federal baseline, and the statutes that back them.
type JurisdictionProfile struct {
	Code       string    `json:"code" yaml:"code"`
	Name       string    `json:"name" yaml:"name"`
	Additional []ClassID `json:"additional" yaml:"additional"`
	Statutes   []string  `json:"statutes,omitempty" yaml:"statutes"`
}

// ProtectionSet is the set of classes protected in one jurisdiction.
type ProtectionSet map[ClassID]struct{}

// Has reports whether id is in the set.
func (s ProtectionSet) Has(id ClassID) bool {
	_, ok := s[id]
	return ok
}

// Registry is the read-only protected-class registry. Build it with NewRegistry
// or Load; it is safe for concurrent use.
type Registry struct {
	classes  []ProtectedClass
	byID     map[ClassID]ProtectedClass
	profiles map[string]JurisdictionProfile
	federal  JurisdictionProfile
}

// NewRegistry validates classes and profiles and builds a Registry. Every
// problem found is reported in a single *IntegrityError.
func NewRegistry(classes []ProtectedClass, profiles []JurisdictionProfile) (*Registry, error) {
	var p problems

	r := &Registry{
		byID:     make(map[ClassID]ProtectedClass, len(classes)),
		profiles: make(map[string]JurisdictionProfile, len(profiles)),
		federal:  JurisdictionProfile{Code: FederalCode, Name: "United States (federal only)"},
	}

	baseline := make(map[ClassID]bool, len(federalBaseline))
	for _, id := range federalBaseline {
		baseline[id] = true
	}

	for _, c := range classes {
		switch {
		case c.ID == "":
			p.addf("protected class with empty id (%q)", c.Name)
			continue
		case r.hasClass(c.ID):
			p.addf("duplicate protected class %q", c.ID)
			continue
		case c.Federal != baseline[c.ID]:
			p.addf("protected class %q federal flag disagrees with the federal baseline", c.ID)
		}
		r.classes = append(r.classes, c)
		r.byID[c.ID] = c
	}
	for _, id := range federalBaseline {
		if !r.hasClass(id) {
			p.addf("federal baseline class %q missing from class table", id)
		}
	}

	for _, prof := range profiles {
		code := NormalizeCode(prof.Code)
		if code == "" {
			p.addf("jurisdiction profile %q has empty code", prof.Name)
			continue
		}
		if _, dup := r.profiles[code]; dup {
			p.addf("duplicate jurisdiction profile %q", code)
			continue
		}
		seen := make(map[ClassID]bool, len(prof.Additional))
		for _, id := range prof.Additional {
			switch {
			case baseline[id]:
				p.addf("jurisdiction %s re-declares federal class %q", code, id)
			case !r.hasClass(id):
				p.addf("jurisdiction %s lists unknown class %q", code, id)
			case seen[id]:
				p.addf("jurisdiction %s lists class %q twice", code, id)
			}
			seen[id] = true
		}
		prof.Code = code
		prof.Additional = append([]ClassID(nil), prof.Additional...)
		prof.Statutes = append([]string(nil), prof.Statutes...)
		if code == FederalCode {
			r.federal = prof
		}
		r.profiles[code] = prof
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) hasClass(id ClassID) bool {
	_, ok := r.byID[id]
	return ok
}

// NormalizeCode upper-cases and trims a jurisdiction code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsFederal reports whether id is one of the seven federal baseline classes.
func IsFederal(id ClassID) bool {
	for _, f := range federalBaseline {
		if f == id {
			return true
		}
	}
	return false
}

// Class returns the class with the given id.
func (r *Registry) Class(id ClassID) (ProtectedClass, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// ClassName returns the display name for id, or the id itself when unknown.
func (r *Registry) ClassName(id ClassID) string {
	if c, ok := r.byID[id]; ok {
		return c.Name
	}
	return string(id)
}

// ProfileFor returns the jurisdiction's profile. Empty or unknown codes get
// the federal-only profile.
func (r *Registry) ProfileFor(jurisdiction string) JurisdictionProfile {
	if prof, ok := r.profiles[NormalizeCode(jurisdiction)]; ok {
		return prof
	}
	return r.federal
}

// Known reports whether a profile exists for the code.
func (r *Registry) Known(jurisdiction string) bool {
	_, ok := r.profiles[NormalizeCode(jurisdiction)]
	return ok
}

// ProtectionsFor returns the federal baseline followed by the jurisdiction's
// additional classes. It never returns fewer than the seven baseline classes.
func (r *Registry) ProtectionsFor(jurisdiction string) []ProtectedClass {
	prof := r.ProfileFor(jurisdiction)
	out := make([]ProtectedClass, 0, len(federalBaseline)+len(prof.Additional))
	for _, id := range federalBaseline {
		out = append(out, r.byID[id])
	}
	for _, id := range prof.Additional {
		out = append(out, r.byID[id])
	}
	return out
}

// ProtectionSet is ProtectionsFor as a set.
func (r *Registry) ProtectionSet(jurisdiction string) ProtectionSet {
	set := make(ProtectionSet)
	for _, c := range r.ProtectionsFor(jurisdiction) {
		set[c.ID] = struct{}{}
	}
	return set
}

// ResolveCitation substitutes the jurisdiction's statutes for the generic
// state-law placeholder. Any other template is returned unchanged.
func (r *Registry) ResolveCitation(template, jurisdiction string) string {
	if template != StateLawCitation {
		return template
	}
	prof := r.ProfileFor(jurisdiction)
	if len(prof.Statutes) == 0 {
		return template
	}
	return strings.Join(prof.Statutes, "; ")
}

// Jurisdictions returns every profile sorted by code.
func (r *Registry) Jurisdictions() []JurisdictionProfile {
	out := make([]JurisdictionProfile, 0, len(r.profiles))
	for _, prof := range r.profiles {
		out = append(out, prof)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Classes returns the class table in definition order.
func (r *Registry) Classes() []ProtectedClass {
	return append([]ProtectedClass(nil), r.classes...)
}
