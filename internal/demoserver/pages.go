package demoserver

import "fmt"

// ListingVersion is one revision of a listing page.
type ListingVersion struct {
	Label string
	HTML  string
}

// ListingDefinition holds all revisions of a single listing page.
type ListingDefinition struct {
	Path        string
	Title       string
	Description string
	Versions    map[int]ListingVersion
}

// GetAllListings returns every demo listing, ordered by path.
func GetAllListings() []ListingDefinition {
	return []ListingDefinition{
		getDowntownStudio(),
		getFamilyHome(),
		getGardenDuplex(),
		getSunnyLoft(),
	}
}

const pageHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>body { font-family: system-ui, sans-serif; max-width: 760px; margin: 0 auto; padding: 20px; }</style>
</head>
<body>
    <nav><a href="/">All listings</a> | <a href="/demo/control">Control panel</a></nav>
`

const pageFoot = `    <footer>Demo Realty. Equal Housing Opportunity.</footer>
</body>
</html>`

func page(title, body string) string {
	return fmt.Sprintf(pageHead, title) + body + pageFoot
}

// ===== SUNNY LOFT =====
// Plain description block; v1 carries familial status and sex problems.
func getSunnyLoft() ListingDefinition {
	return ListingDefinition{
		Path:        "/listings/sunny-loft",
		Title:       "Sunny Loft",
		Description: "Description in a .listing-description block",
		Versions: map[int]ListingVersion{
			1: {
				Label: "draft",
				HTML: page("Sunny Loft - 1BR", `
    <h1>Sunny Loft</h1>
    <div class="listing-description">
        <p>Open-plan loft with a huge master bedroom and skylights.</p>
        <p>Perfect for a single professional. No kids, no pets.</p>
    </div>
`),
			},
			2: {
				Label: "revised",
				HTML: page("Sunny Loft - 1BR", `
    <h1>Sunny Loft</h1>
    <div class="listing-description">
        <p>Open-plan loft with a huge primary bedroom and skylights.</p>
        <p>Quiet top-floor unit. No pets.</p>
    </div>
`),
			},
		},
	}
}

// ===== FAMILY HOME =====
// Description only in microdata; v1 has income and disability problems.
func getFamilyHome() ListingDefinition {
	return ListingDefinition{
		Path:        "/listings/family-home",
		Title:       "Maple Street House",
		Description: "Description in an itemprop=description block",
		Versions: map[int]ListingVersion{
			1: {
				Label: "draft",
				HTML: page("Maple Street House", `
    <h1>Maple Street House</h1>
    <section itemscope itemtype="https://schema.org/Residence">
        <div itemprop="description">
            Three bedrooms, fenced yard, walk to schools.
            No Section 8. Must be able to climb stairs.
        </div>
    </section>
`),
			},
			2: {
				Label: "revised",
				HTML: page("Maple Street House", `
    <h1>Maple Street House</h1>
    <section itemscope itemtype="https://schema.org/Residence">
        <div itemprop="description">
            Three bedrooms, fenced yard, walk to schools.
            Second-floor bedrooms reached by stairs.
        </div>
    </section>
`),
			},
		},
	}
}

// ===== GARDEN DUPLEX =====
// No description block; only the meta description is scannable.
func getGardenDuplex() ListingDefinition {
	return ListingDefinition{
		Path:        "/listings/garden-duplex",
		Title:       "Garden Duplex",
		Description: "Description only in the meta tag",
		Versions: map[int]ListingVersion{
			1: {
				Label: "draft",
				HTML: `<!DOCTYPE html>
<html>
<head>
    <title>Garden Duplex</title>
    <meta name="description" content="Garden duplex in an exclusive neighborhood. Christian home. Must speak English.">
</head>
<body><h1>Garden Duplex</h1><img src="/static/duplex.jpg" alt="duplex"></body>
</html>`,
			},
			2: {
				Label: "revised",
				HTML: `<!DOCTYPE html>
<html>
<head>
    <title>Garden Duplex</title>
    <meta name="description" content="Garden duplex on a tree-lined street near the park.">
</head>
<body><h1>Garden Duplex</h1><img src="/static/duplex.jpg" alt="duplex"></body>
</html>`,
			},
		},
	}
}

// ===== DOWNTOWN STUDIO =====
// The description is written by script, so only a rendering backend sees it.
func getDowntownStudio() ListingDefinition {
	return ListingDefinition{
		Path:        "/listings/downtown-studio",
		Title:       "Downtown Studio",
		Description: "Description rendered client-side (use the chromedp backend)",
		Versions: map[int]ListingVersion{
			1: {
				Label: "draft",
				HTML: page("Downtown Studio", `
    <h1>Downtown Studio</h1>
    <div id="listing-description" data-listing-description></div>
    <script>
        document.getElementById('listing-description').textContent =
            'Bachelor pad steps from the train. Adults only building.';
    </script>
`),
			},
			2: {
				Label: "revised",
				HTML: page("Downtown Studio", `
    <h1>Downtown Studio</h1>
    <div id="listing-description" data-listing-description></div>
    <script>
        document.getElementById('listing-description').textContent =
            'Studio apartment steps from the train. Quiet building.';
    </script>
`),
			},
		},
	}
}
