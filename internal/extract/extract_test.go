package extract_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/fhscan/internal/extract"
)

func TestFromHTML_DescriptionBlock(t *testing.T) {
	t.Parallel()
	page := `<!DOCTYPE html><html><head><title>Site | 12 Elm St</title>
<meta property="og:title" content="12 Elm St - Two bedroom">
<script>var tracking = "no kids";</script></head>
<body>
<nav>Home | Rentals</nav>
<div itemprop="description">
  <p>Sunny   two-bedroom with a <b>master bedroom</b>.</p>
  <p>Adults only.</p>
  <span style="display: none">hidden text</span>
</div>
<footer>No pets</footer>
</body></html>`

	l, err := extract.FromHTML([]byte(page))
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if l.Title != "12 Elm St - Two bedroom" {
		t.Errorf("title = %q", l.Title)
	}
	if l.Source != "[itemprop=description]" {
		t.Errorf("source = %q", l.Source)
	}
	want := "Sunny two-bedroom with a master bedroom.\nAdults only."
	if l.Description != want {
		t.Errorf("description = %q, want %q", l.Description, want)
	}
	if strings.Contains(l.Text(), "tracking") || strings.Contains(l.Text(), "hidden") {
		t.Errorf("script or hidden text leaked: %q", l.Text())
	}
	if !strings.HasPrefix(l.Text(), l.Title+"\n") {
		t.Errorf("Text should lead with the title: %q", l.Text())
	}
}

func TestFromHTML_MetaFallback(t *testing.T) {
	t.Parallel()
	page := `<html><head><meta name="description" content="  Cozy  studio, perfect for singles. "></head><body><h1>Studio</h1></body></html>`
	l, err := extract.FromHTML([]byte(page))
	if err != nil {
		t.Fatal(err)
	}
	if l.Source != "meta" || l.Description != "Cozy studio, perfect for singles." {
		t.Errorf("unexpected listing %+v", l)
	}
	if l.Title != "Studio" {
		t.Errorf("expected h1 title, got %q", l.Title)
	}
}

func TestFromHTML_BodyFallbackSkipsChrome(t *testing.T) {
	t.Parallel()
	page := `<html><body><header>Acme Realty</header><main><h2>Loft</h2><p>Open plan loft.</p></main><footer>© Acme</footer></body></html>`
	l, err := extract.FromHTML([]byte(page))
	if err != nil {
		t.Fatal(err)
	}
	if l.Source != "body" {
		t.Errorf("source = %q", l.Source)
	}
	if l.Description != "Loft\nOpen plan loft." {
		t.Errorf("description = %q", l.Description)
	}
}

func TestVisibleText_BlocksAndComments(t *testing.T) {
	t.Parallel()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<ul><li>One</li><li>Two<!-- no kids --></li></ul><p aria-hidden="true">x</p><div hidden>y</div>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := extract.VisibleText(doc.Find("body").Nodes...); got != "One\nTwo" {
		t.Errorf("VisibleText = %q", got)
	}
}

func TestListingText_Parts(t *testing.T) {
	t.Parallel()
	if got := (extract.Listing{Description: "d"}).Text(); got != "d" {
		t.Errorf("got %q", got)
	}
	if got := (extract.Listing{Title: "t"}).Text(); got != "t" {
		t.Errorf("got %q", got)
	}
}
