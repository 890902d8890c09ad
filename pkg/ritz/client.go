package ritz

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

var baseURL = "https://www.ritzcinemas.com.au/now-showing"

// Client handles HTTP requests to the Ritz Cinemas listings pages.
type Client struct {
	httpClient *http.Client

	// now provides the current local time; overridable in tests so day
	// resolution is deterministic.
	now func() time.Time

	// politeness sleeps between consecutive page requests so we don't
	// trip the site's anti-scraping defenses.
	politeness func()
}

// NewClient creates a new listings client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
		politeness: func() {
			// Randomised so consecutive requests don't land on a fixed beat.
			ms := 1000 + rand.IntN(1001)
			time.Sleep(time.Duration(ms) * time.Millisecond)
		},
	}
}

// Get fetches the listings page for the given day label. An empty label
// fetches the root "now showing" page.
func (c *Client) Get(label string) (*http.Response, error) {
	url := baseURL
	if label != "" {
		url = fmt.Sprintf("%s/%s", baseURL, label)
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}

// fetchAndParse fetches a page and hands its body to parse, making sure the
// body is always closed.
func (c *Client) fetchAndParse(label string, parse func(io.Reader) error) error {
	resp, err := c.Get(label)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return parse(resp.Body)
}
