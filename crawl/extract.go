package crawl

import (
	"net/url"
	"strings"
	"unicode/utf8"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Heuristic bounds for title and description candidates.
const (
	maxTitleLen       = 80
	maxDescriptionLen = 120
)

// ExtractListings returns the deduplicated set of listing sightings visible
// in one rendered page snapshot. The anchor element is always the extraction
// root, never an ancestor container, so each sighting maps to exactly one
// link target. Extraction is read-only and never fails on missing optional
// fields; every field except URL degrades to empty.
func ExtractListings(doc locaties.Document, base *url.URL) []*locaties.Sighting {
	var order []string
	byURL := make(map[string]*locaties.Sighting)

	for _, a := range doc.QueryAll("a[href]") {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			continue
		}

		resolved := resolveHref(base, href)
		if resolved == "" {
			continue
		}
		norm, err := locaties.NormalizeURL(resolved)
		if err != nil {
			continue
		}
		if !sameHost(base, norm) || !locaties.IsListingURL(norm) {
			continue
		}

		lines := a.Lines()
		title := chooseTitle(lines)
		s := &locaties.Sighting{
			URL:         norm,
			Title:       title,
			Description: chooseDescription(lines, title),
			Image:       chooseImage(a, base),
		}

		// Nested duplicate markup can yield several anchors for the same
		// target within one page; merge them by the same fill rule used
		// across pages.
		if existing, seen := byURL[norm]; seen {
			existing.Fill(s)
			continue
		}
		byURL[norm] = s
		order = append(order, norm)
	}

	sightings := make([]*locaties.Sighting, 0, len(order))
	for _, u := range order {
		sightings = append(sightings, byURL[u])
	}
	return sightings
}

// chooseTitle picks the best short line of text inside the anchor. Lines
// matching the postal-code pattern are almost certainly address lines and
// are deprioritized. Among the rest, the first line no longer than 80
// characters wins; failing that, the very first line found.
func chooseTitle(lines []string) string {
	for _, line := range lines {
		if postalLine(line) {
			continue
		}
		if utf8.RuneCountInString(line) <= maxTitleLen {
			return line
		}
	}
	if len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// chooseDescription prefers a postal-code line (address/locality), then the
// first line distinct from the title and no longer than 120 characters.
func chooseDescription(lines []string, title string) string {
	for _, line := range lines {
		if postalLine(line) {
			return line
		}
	}
	for _, line := range lines {
		if line == title {
			continue
		}
		if utf8.RuneCountInString(line) <= maxDescriptionLen {
			return line
		}
	}
	return ""
}

// chooseImage picks a non-decorative preview image inside the anchor.
// Decorative imagery (medals, awards, icons, logos, sprites) and
// locally-hosted assets are excluded; an externally-hosted thumbnail is
// preferred over the first remaining candidate.
func chooseImage(a locaties.Element, base *url.URL) string {
	var candidates []string
	for _, img := range a.QueryAll("img") {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			continue
		}
		alt, _ := img.Attr("alt")
		if decorativeImage(src, alt) {
			continue
		}
		candidates = append(candidates, src)
	}

	for _, src := range candidates {
		if previewHosted(src) {
			return resolveHref(base, src)
		}
	}
	if len(candidates) > 0 {
		return resolveHref(base, candidates[0])
	}
	return ""
}

// postalLine reports whether a line starts with a four-digit postal code,
// e.g. "3294 Molenstede".
func postalLine(line string) bool {
	if len(line) < 5 || line[4] != ' ' {
		return false
	}
	for i := 0; i < 4; i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}

// Decorative markers: award imagery, icons, logos, favicons, sprite sheets.
var decorativeMarkers = []string{"medal", "award", "badge", "icon", "logo", "favicon", "sprite"}

func decorativeImage(src, alt string) bool {
	lowerSrc := strings.ToLower(src)
	lowerAlt := strings.ToLower(alt)
	for _, marker := range decorativeMarkers {
		if strings.Contains(lowerSrc, marker) || strings.Contains(lowerAlt, marker) {
			return true
		}
	}
	// Locally-hosted assets under images/ are site chrome, not previews.
	if strings.HasPrefix(lowerSrc, "images/") || strings.HasPrefix(lowerSrc, "/images/") {
		return true
	}
	return false
}

// previewHosted reports whether the source looks like a genuine
// externally-hosted thumbnail (known preview CDN or thumbnail naming).
func previewHosted(src string) bool {
	lower := strings.ToLower(src)
	return strings.Contains(lower, "xano.io") || strings.Contains(lower, "thumbnail")
}

// resolveHref resolves a relative, rooted or bare href against the page's
// own origin. Returns empty string if the href cannot be parsed.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// sameHost checks that a normalized URL stays on the page's own origin.
func sameHost(base *url.URL, normalized string) bool {
	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}
