package main

import (
	"fmt"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	var filter *locaties.URLFilter
	if !c.All {
		filter = listingFilter()
	}

	urls, err := deps.Sitemap.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locaties.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No sitemap URLs found")
		return nil
	}
	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
