// Package autofix rewrites flagged phrases using the compliant-alternatives
// table. It only performs the curated lexical substitutions in that table; it
// never rewrites anything the table does not list.
package autofix

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/raysh454/fhscan/internal/catalog"
)

// ChangeRecord is one substitution applied to the text.
type ChangeRecord struct {
	Original    string          `json:"original"`
	Replacement string          `json:"replacement"`
	Category    catalog.ClassID `json:"category"`
	Count       int             `json:"count"`
}

// Chunk is one added or removed span of the rewrite.
type Chunk struct {
	Type    string `json:"type"` // "added" or "removed"
	Content string `json:"content"`
}

// Result is the rewritten text plus an audit trail.
type Result struct {
	Text    string         `json:"text"`
	Changes []ChangeRecord `json:"changes"`
	// Patch is the rewrite in diff-match-patch patch format; empty when unchanged.
	Patch  string  `json:"patch,omitempty"`
	Chunks []Chunk `json:"chunks,omitempty"`
}

// Changed reports whether any substitution was made.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Fixer applies an alternatives table. It is safe for concurrent use.
type Fixer struct {
	alts *catalog.Alternatives
}

// New returns a Fixer over alts.
func New(alts *catalog.Alternatives) *Fixer {
	return &Fixer{alts: alts}
}

// Fix replaces every table phrase found in text with its first replacement,
// longest phrase first. Text with no table phrase comes back unchanged with an
// empty change list. Replacements are single-spaced and non-blank, so the
// rewrite never introduces a blank run and existing spacing is left alone.
func (f *Fixer) Fix(text string) Result {
	out := text
	changes := []ChangeRecord{}

	for _, alt := range f.alts.Longest() {
		p := alt.Pattern()
		if len(p.FindAll(out)) == 0 {
			continue
		}
		primary := alt.Primary()
		count := 0
		out = p.ReplaceAll(out, func(match string) string {
			count++
			return matchCase(match, primary)
		})
		changes = append(changes, ChangeRecord{
			Original:    alt.Phrase,
			Replacement: primary,
			Category:    alt.Category,
			Count:       count,
		})
	}

	if len(changes) == 0 {
		return Result{Text: text, Changes: changes}
	}
	res := Result{Text: out, Changes: changes}
	res.Patch, res.Chunks = diff(text, out)
	return res
}

// matchCase carries the casing of match over to repl: all-caps stays all-caps,
// a leading capital stays a leading capital.
func matchCase(match, repl string) string {
	if isAllUpper(match) {
		return strings.ToUpper(repl)
	}
	first, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(repl)
		return string(unicode.ToUpper(r)) + repl[size:]
	}
	return repl
}

func isAllUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}

func diff(before, after string) (string, []Chunk) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	chunks := make([]Chunk, 0)
	for _, d := range diffs {
		var typ string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			typ = "added"
		case diffmatchpatch.DiffDelete:
			typ = "removed"
		default:
			continue
		}
		chunks = append(chunks, Chunk{Type: typ, Content: d.Text})
	}
	patch := dmp.PatchToText(dmp.PatchMake(before, diffs))
	return patch, chunks
}
