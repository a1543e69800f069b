// Package fetch - browser.go provides headless browser rendering for ranking
// pages that arrive empty over plain HTTP.
package fetch

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum markup length to consider a plain HTTP
// fetch usable. Shorter responses usually mean a JavaScript-rendered shell.
const MinContentLength = 500

// ShouldUseBrowser reports whether the fetched markup is too thin to contain
// a rendered ranking table.
func ShouldUseBrowser(html string) bool {
	return len(strings.TrimSpace(html)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Ranking tables render after the initial load.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{
			URL:     url,
			Message: "browser rendering failed",
			Cause:   err,
		}
	}

	if verbose {
		log.Printf("[BROWSER] Rendered %d bytes", len(html))
	}
	return html, nil
}

// PageHTML fetches a URL, falling back to browser rendering when the plain
// HTTP response looks like an unrendered shell and the fallback is enabled.
func PageHTML(ctx context.Context, url string, opts *Options, useBrowser, verbose bool) (string, error) {
	result, err := URL(ctx, url, opts)
	if err != nil {
		if !useBrowser {
			return "", err
		}
		log.Printf("[FETCH] HTTP fetch failed for %s, trying browser: %v", url, err)
		return WithBrowser(ctx, url, browserTimeout(opts), verbose)
	}

	if useBrowser && ShouldUseBrowser(result.HTML) {
		return WithBrowser(ctx, url, browserTimeout(opts), verbose)
	}
	return result.HTML, nil
}

func browserTimeout(opts *Options) time.Duration {
	if opts != nil && opts.Timeout > 0 {
		// Rendering needs headroom beyond the plain HTTP budget.
		return opts.Timeout * 2
	}
	return DefaultTimeout * 2
}
