package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is the YAML document that extends the built-in catalog:
//
//	rules:
//	  - id: local-no-students
//	    pattern: {regex: '\bno\s+students\b'}
//	    category: age
//	    severity: medium
//	    citation: State and local fair housing law
//	    suggestion: Remove occupation-based exclusions.
//	    jurisdictions: [CA]
//	alternatives:
//	  - phrase: walk-in master closet
//	    replacements: [walk-in primary closet]
//	    category: sex
type Overlay struct {
	Rules        []OverlayRule `yaml:"rules"`
	Alternatives []Alternative `yaml:"alternatives"`
}

// OverlayRule is a Rule as written in YAML.
type OverlayRule struct {
	ID            string         `yaml:"id"`
	Pattern       OverlayPattern `yaml:"pattern"`
	Category      ClassID        `yaml:"category"`
	Severity      Severity       `yaml:"severity"`
	Citation      string         `yaml:"citation"`
	Suggestion    string         `yaml:"suggestion"`
	Jurisdictions []string       `yaml:"jurisdictions"`
}

// OverlayPattern sets exactly one of Literal or Regex.
type OverlayPattern struct {
	Literal string `yaml:"literal"`
	Regex   string `yaml:"regex"`
}

// ParseOverlay decodes an overlay document. Unknown keys are rejected.
func ParseOverlay(r io.Reader) (*Overlay, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var o Overlay
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return &o, nil
		}
		return nil, fmt.Errorf("decode overlay: %w", err)
	}
	return &o, nil
}

// LoadOverlayFile reads and parses an overlay file.
func LoadOverlayFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	o, err := ParseOverlay(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

func (o *Overlay) decode() ([]Rule, []Alternative, error) {
	var p problems
	rules := make([]Rule, 0, len(o.Rules))
	for i, r := range o.Rules {
		var pat Pattern
		switch {
		case r.Pattern.Literal != "" && r.Pattern.Regex != "":
			p.addf("overlay rule #%d (%s): pattern sets both literal and regex", i, r.ID)
			continue
		case r.Pattern.Literal != "":
			pat = Literal(r.Pattern.Literal)
		case r.Pattern.Regex != "":
			pat = Regex(r.Pattern.Regex)
		default:
			p.addf("overlay rule #%d (%s): missing pattern", i, r.ID)
			continue
		}
		rules = append(rules, Rule{
			ID:            r.ID,
			Pattern:       pat,
			Category:      r.Category,
			Severity:      r.Severity,
			Citation:      r.Citation,
			Suggestion:    r.Suggestion,
			Jurisdictions: r.Jurisdictions,
		})
	}
	if err := p.err(); err != nil {
		return nil, nil, err
	}
	return rules, append([]Alternative(nil), o.Alternatives...), nil
}
