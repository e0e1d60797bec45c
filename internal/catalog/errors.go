package catalog

import (
	"fmt"
	"strings"
)

// IntegrityError reports every misconfiguration found while building the
// registry, rule catalog or alternatives table. It is fatal at startup.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	if len(e.Problems) == 1 {
		return "catalog integrity: " + e.Problems[0]
	}
	return fmt.Sprintf("catalog integrity: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// problems accumulates integrity failures and turns them into an error.
type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &IntegrityError{Problems: append([]string(nil), p...)}
}
