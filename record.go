package locaties

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

// listingSegmentRE matches a detail-path segment of the form
// five-digit-id + hyphen + slug, e.g. "31032-t-kroonrad".
var listingSegmentRE = regexp.MustCompile(`^(\d{5})-(.+)$`)

// Sighting is a single observation of a listing on one rendered page.
// Every field except URL is best-effort: an empty string means the
// heuristic found nothing, never that extraction failed.
type Sighting struct {
	URL         string
	Title       string
	Description string
	Image       string
}

// Validate returns an error if the sighting is missing its identity key.
func (s *Sighting) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "sighting URL required")
	}
	return nil
}

// Fill copies non-empty fields from other into s, but only where s has no
// value yet. Earlier sightings therefore always win; later sightings can
// only fill gaps. Fill is idempotent and, over non-empty values, the
// combined result is independent of application order.
func (s *Sighting) Fill(other *Sighting) {
	if s.Title == "" {
		s.Title = other.Title
	}
	if s.Description == "" {
		s.Description = other.Description
	}
	if s.Image == "" {
		s.Image = other.Image
	}
}

// Record is the canonical output form of one unique location. Nullable
// fields are pointers so the serialized JSON carries explicit nulls for
// downstream consumers, which must treat every field except url as
// possibly null.
type Record struct {
	URL         string  `json:"url"`
	Canonical   string  `json:"canonical"`
	Key         *string `json:"key"`
	ID          *string `json:"id"`
	Slug        *string `json:"slug"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Canonicalize synthesizes the canonical record for a fully merged sighting.
// Key, ID and Slug derive from the listing path segment and stay null when
// the URL does not match that shape. Title is non-null by construction: it
// falls back to the key, then to the URL itself.
func Canonicalize(s *Sighting) *Record {
	rec := &Record{
		URL:       s.URL,
		Canonical: s.URL,
		Title:     s.Title,
	}
	if key, id, slug, ok := ParseListingKey(s.URL); ok {
		rec.Key = &key
		rec.ID = &id
		rec.Slug = &slug
		if rec.Title == "" {
			rec.Title = key
		}
	}
	if rec.Title == "" {
		rec.Title = s.URL
	}
	if s.Description != "" {
		rec.Description = &s.Description
	}
	if s.Image != "" {
		rec.Image = &s.Image
	}
	return rec
}

// NormalizeURL converts an absolute URL to its canonical identity form:
// query and fragment stripped, scheme and host lowercased, trailing slash
// removed from the path. Normalization is idempotent.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q is not absolute", raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String(), nil
}

// IsListingURL reports whether a normalized URL points at a listing detail
// page: a "locaties" path segment immediately followed by a final segment
// of the form five-digit-id + hyphen + slug.
func IsListingURL(normalized string) bool {
	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	segs := pathSegments(u.Path)
	for i := 0; i+1 < len(segs); i++ {
		if segs[i] == "locaties" && i+2 == len(segs) {
			return listingSegmentRE.MatchString(segs[i+1])
		}
	}
	return false
}

// ParseListingKey extracts the key, id and slug from the path segment
// matching the five-digit-id + hyphen + slug pattern. ok is false when no
// segment matches.
func ParseListingKey(rawURL string) (key, id, slug string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", "", false
	}
	for _, seg := range pathSegments(u.Path) {
		if m := listingSegmentRE.FindStringSubmatch(seg); m != nil {
			return seg, m[1], m[2], true
		}
	}
	return "", "", "", false
}

func pathSegments(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// RecordWriter persists the final record set.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*Record) error
}
