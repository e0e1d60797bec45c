// Package score turns a set of violations into a 0-100 compliance score and a
// discrete risk level.
package score

import "github.com/raysh454/fhscan/internal/catalog"

// Penalties per violation.
const (
	HighPenalty   = 25
	MediumPenalty = 10
	LowPenalty    = 5
	MaxScore      = 100
)

// Graded is anything carrying a severity tier.
type Graded interface {
	Tier() catalog.Severity
}

// Counts partitions violations by severity.
type Counts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total is High+Medium+Low.
func (c Counts) Total() int {
	return c.High + c.Medium + c.Low
}

// Tally counts vs by severity. Unknown tiers are ignored.
func Tally[V Graded](vs []V) Counts {
	var c Counts
	for _, v := range vs {
		switch v.Tier() {
		case catalog.SeverityHigh:
			c.High++
		case catalog.SeverityMedium:
			c.Medium++
		case catalog.SeverityLow:
			c.Low++
		}
	}
	return c
}

// FromCounts applies the penalty table and clamps the result to [0, 100].
func FromCounts(c Counts) int {
	s := MaxScore - HighPenalty*c.High - MediumPenalty*c.Medium - LowPenalty*c.Low
	if s < 0 {
		return 0
	}
	return s
}

// Calculate scores a violation list.
func Calculate[V Graded](vs []V) int {
	return FromCounts(Tally(vs))
}

// Level is a discrete risk tier.
type Level string

const (
	Compliant Level = "compliant"
	Low       Level = "low"
	Medium    Level = "medium"
	High      Level = "high"
)

// Label is the human-readable form of l.
func (l Level) Label() string {
	switch l {
	case Compliant:
		return "Compliant"
	case Low:
		return "Low Risk"
	case Medium:
		return "Medium Risk"
	case High:
		return "High Risk"
	}
	return string(l)
}

// Risk pairs a level with its label for serialization.
type Risk struct {
	Level Level  `json:"level"`
	Label string `json:"label"`
}

func riskOf(l Level) Risk {
	return Risk{Level: l, Label: l.Label()}
}

// RiskFromCounts is compliant with no violations, otherwise the worst tier present.
func RiskFromCounts(c Counts) Risk {
	switch {
	case c.High > 0:
		return riskOf(High)
	case c.Medium > 0:
		return riskOf(Medium)
	case c.Low > 0:
		return riskOf(Low)
	}
	return riskOf(Compliant)
}

// RiskFromViolations is RiskFromCounts over vs.
func RiskFromViolations[V Graded](vs []V) Risk {
	return RiskFromCounts(Tally(vs))
}

// RiskFromScore buckets a bare score: 100 is compliant, 75 and up low,
// 50 and up medium, anything lower high.
func RiskFromScore(s int) Risk {
	switch {
	case s >= MaxScore:
		return riskOf(Compliant)
	case s >= 75:
		return riskOf(Low)
	case s >= 50:
		return riskOf(Medium)
	}
	return riskOf(High)
}
