package main

import (
	"fmt"

	"github.com/skillpack/skillpack"
)

// Run executes the preview command: discover URLs without fetching pages.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	filter, err := compileFilter(c.Filter, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found. The site may not publish a sitemap; 'skillpack build' will fall back to link crawling.")
		return nil
	}

	for _, url := range urls {
		fmt.Fprintln(deps.Stdout, url)
	}
	fmt.Fprintf(deps.Stdout, "%d URLs\n", len(urls))

	return nil
}
