// Package locaties crawls a paginated, JavaScript-rendered directory of
// location listings and produces a deduplicated, normalized record set for
// downstream static-site generation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/), and the
// crawl orchestration lives in crawl/.
package locaties
