package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// Catalog bundles the registry, the compiled rule catalog and the alternatives
// table. It is built once and read-only afterwards.
type Catalog struct {
	Registry     *Registry
	Alternatives *Alternatives
	rules        []Rule
}

// Options configures Load. Zero value loads the built-in tables.
type Options struct {
	// Overlay adds rules and alternatives after the built-ins.
	Overlay *Overlay
	// Classes and Profiles replace the built-in registry when non-nil.
	Classes  []ProtectedClass
	Profiles []JurisdictionProfile
	// Rules and Alt replace the built-in rules/alternatives when non-nil.
	Rules []Rule
	Alt   []Alternative
}

// Load validates and compiles the tables. Every integrity problem across the
// registry, rules and alternatives is reported together.
func Load(opts Options) (*Catalog, error) {
	classes, profiles := opts.Classes, opts.Profiles
	if classes == nil {
		classes = defaultClasses()
	}
	if profiles == nil {
		profiles = defaultProfiles()
	}
	reg, err := NewRegistry(classes, profiles)
	if err != nil {
		return nil, err
	}

	rules := opts.Rules
	if rules == nil {
		rules = defaultRules()
	}
	alts := opts.Alt
	if alts == nil {
		alts = defaultAlternatives()
	}
	if opts.Overlay != nil {
		extraRules, extraAlts, err := opts.Overlay.decode()
		if err != nil {
			return nil, err
		}
		rules = append(append([]Rule(nil), rules...), extraRules...)
		alts = append(append([]Alternative(nil), alts...), extraAlts...)
	}

	var all problems
	compiled, err := compileRules(rules, reg)
	all = appendProblems(all, err)
	table, err := newAlternatives(alts, reg)
	all = appendProblems(all, err)
	if err := all.err(); err != nil {
		return nil, err
	}
	return &Catalog{Registry: reg, Alternatives: table, rules: compiled}, nil
}

func appendProblems(p problems, err error) problems {
	if err == nil {
		return p
	}
	var ie *IntegrityError
	if errors.As(err, &ie) {
		return append(p, ie.Problems...)
	}
	return append(p, err.Error())
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog, built on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(Options{})
	})
	return defaultCat, defaultErr
}

// MustDefault is Default for tests and package init; it panics on a broken
// built-in table.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in tables invalid: %v", err))
	}
	return c
}

// Rules returns the compiled rules in catalog order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		r.Jurisdictions = append([]string(nil), r.Jurisdictions...)
		out[i] = r
	}
	return out
}

// Len is the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rule returns the rule at catalog position i without copying its slices.
// Callers must not modify the result.
func (c *Catalog) Rule(i int) Rule {
	return c.rules[i]
}
