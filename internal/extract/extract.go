// Package extract pulls the human-written listing copy out of a listing page.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Listing is the text recovered from one page.
type Listing struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	// Source names where Description came from: a selector, "meta" or "body".
	Source string `json:"source"`
}

// Text is the title and description joined for scanning.
func (l Listing) Text() string {
	if l.Title == "" {
		return l.Description
	}
	if l.Description == "" {
		return l.Title
	}
	return l.Title + "\n" + l.Description
}

// DescriptionSelectors are tried in order; the first non-empty match wins.
var DescriptionSelectors = []string{
	"[data-listing-description]",
	"[itemprop=description]",
	"#listing-description",
	".listing-description",
	"#description",
	".property-description",
	".description",
}

// FromHTML extracts listing text. Pages without a recognizable description
// block fall back to the meta description, then to the visible body text.
func FromHTML(page []byte) (Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return Listing{}, fmt.Errorf("parse html: %w", err)
	}

	l := Listing{Title: title(doc)}
	for _, sel := range DescriptionSelectors {
		var parts []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if t := VisibleText(s.Nodes...); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) > 0 {
			l.Description = strings.Join(parts, "\n")
			l.Source = sel
			return l, nil
		}
	}

	if meta := metaContent(doc, "og:description", "description"); meta != "" {
		l.Description = meta
		l.Source = "meta"
		return l, nil
	}

	body := doc.Find("body").Clone()
	body.Find("nav, header, footer, aside, form").Remove()
	l.Description = VisibleText(body.Nodes...)
	l.Source = "body"
	return l, nil
}

func title(doc *goquery.Document) string {
	if t := metaContent(doc, "og:title"); t != "" {
		return t
	}
	if t := collapse(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return collapse(doc.Find("title").First().Text())
}

func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		sel := fmt.Sprintf(`meta[property=%q], meta[name=%q]`, name, name)
		if c, ok := doc.Find(sel).First().Attr("content"); ok {
			if c = collapse(c); c != "" {
				return c
			}
		}
	}
	return ""
}

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
}

var blocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Section: true, atom.Article: true, atom.Tr: true, atom.Td: true, atom.Th: true,
	atom.Table: true, atom.Blockquote: true, atom.Dd: true, atom.Dt: true,
}

// VisibleText renders nodes as plain text: script and style content is
// dropped, block elements become line breaks and runs of blanks collapse.
func VisibleText(nodes ...*html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipped[n.DataAtom] {
				return
			}
			if hidden(n) {
				return
			}
		case html.CommentNode:
			return
		}
		block := n.Type == html.ElementNode && blocks[n.DataAtom]
		if block {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteString("\n")
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = collapse(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func hidden(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden":
			return true
		case "aria-hidden":
			if a.Val == "true" {
				return true
			}
		case "style":
			s := strings.ReplaceAll(strings.ToLower(a.Val), " ", "")
			if strings.Contains(s, "display:none") {
				return true
			}
		}
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
