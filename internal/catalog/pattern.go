package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PatternKind tags how a Pattern's source is interpreted.
type PatternKind string

const (
	// PatternLiteral matches a phrase case-insensitively, on word boundaries,
	// allowing any run of whitespace between its words.
	PatternLiteral PatternKind = "literal"
	// PatternRegex is an RE2 expression, always matched case-insensitively.
	PatternRegex PatternKind = "regex"
)

// Pattern is a rule's matcher. Patterns are compiled once when the catalog is
// loaded; the compiled form is immutable and safe for concurrent use.
type Pattern struct {
	Kind   PatternKind
	Source string
	re     *regexp.Regexp
}

// Literal returns an uncompiled literal pattern.
func Literal(phrase string) Pattern {
	return Pattern{Kind: PatternLiteral, Source: phrase}
}

// Regex returns an uncompiled regular-expression pattern.
func Regex(expr string) Pattern {
	return Pattern{Kind: PatternRegex, Source: expr}
}

func (p Pattern) String() string {
	return string(p.Kind) + ":" + p.Source
}

// Compiled reports whether the pattern is ready for matching.
func (p Pattern) Compiled() bool {
	return p.re != nil
}

func (p Pattern) compile() (Pattern, error) {
	if strings.TrimSpace(p.Source) == "" {
		return p, fmt.Errorf("empty %s pattern", p.Kind)
	}
	var expr string
	switch p.Kind {
	case PatternLiteral:
		expr = literalExpr(p.Source)
	case PatternRegex:
		expr = "(?i)" + p.Source
	default:
		return p, fmt.Errorf("unknown pattern kind %q", p.Kind)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return p, fmt.Errorf("compile %s: %w", p, err)
	}
	if re.MatchString("") {
		return p, fmt.Errorf("%s matches empty text", p)
	}
	p.re = re
	return p, nil
}

func literalExpr(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	expr := strings.Join(words, `\s+`)

	trimmed := strings.TrimSpace(phrase)
	first, _ := utf8.DecodeRuneInString(trimmed)
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if isWordRune(first) {
		expr = `\b` + expr
	}
	if isWordRune(last) {
		expr += `\b`
	}
	return "(?i)" + expr
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FindAll returns the byte ranges of every non-overlapping match in text.
// An uncompiled pattern matches nothing.
func (p Pattern) FindAll(text string) [][]int {
	if p.re == nil {
		return nil
	}
	return p.re.FindAllStringIndex(text, -1)
}

// ReplaceAll rewrites every match using repl, which receives the matched text.
func (p Pattern) ReplaceAll(text string, repl func(match string) string) string {
	if p.re == nil {
		return text
	}
	return p.re.ReplaceAllStringFunc(text, repl)
}
