package ritz

import (
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DiscoverDayLabels fetches the root "now showing" page and extracts the day
// labels the cinema currently publishes, in page order. The day selector is
// a swiper carousel whose slides link to /now-showing/<label>; the "all"
// pseudo-label is filtered out.
func (c *Client) DiscoverDayLabels() ([]string, error) {
	var labels []string

	err := c.fetchAndParse("", func(body io.Reader) error {
		doc, err := goquery.NewDocumentFromReader(body)
		if err != nil {
			return err
		}

		doc.Find(".swiper-slide a[href*='/now-showing/']").Each(func(i int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok {
				return
			}
			label, ok := strings.CutPrefix(href, "/now-showing/")
			if !ok || label == "" || label == "all" {
				return
			}
			labels = append(labels, label)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return labels, nil
}

// dayLabels returns the labels to fetch for a full run, falling back to the
// fixed week sequence when discovery fails or comes back empty. The fallback
// is an expected resilience path, not an error.
func (c *Client) dayLabels(today time.Time) []string {
	labels, err := c.DiscoverDayLabels()
	if err != nil || len(labels) == 0 {
		return FallbackDayLabels(today)
	}
	return labels
}
