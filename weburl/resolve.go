package weburl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
}

// Resolve follows a share URL and parses the canonical og:url the page
// advertises. Shortened and region-redirecting links end up at their
// canonical music.apple.com form this way.
func Resolve(ctx context.Context, rawURL string) (ShareLink, error) {
	if link, err := Parse(rawURL); err == nil {
		return link, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return ShareLink{}, err
	}

	// Set realistic User-Agent to avoid blocks
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	log.Tracef("Fetching Apple Music page: %s", rawURL)

	resp, err := httpClient.Do(req)
	if err != nil {
		return ShareLink{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return ShareLink{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ShareLink{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	canonical, _ := doc.Find("meta[property='og:url']").Attr("content")
	if canonical == "" {
		canonical, _ = doc.Find("link[rel='canonical']").Attr("href")
	}
	if canonical == "" {
		return ShareLink{}, errors.New("weburl: no canonical URL in page")
	}

	log.Debugf("Resolved canonical URL: %s", canonical)
	return Parse(canonical)
}
