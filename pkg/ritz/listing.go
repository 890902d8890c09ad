package ritz

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseListing parses one day's listings page into (title, showtime strings)
// pairs. Rows without a title link, or whose title trims to empty, are
// dropped; a row with a title but no showtimes is kept with an empty time
// list. Row order is preserved and repeated titles are not merged.
func ParseListing(r io.Reader) ([]DayListing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var listings []DayListing

	doc.Find("li.Stack").Each(func(i int, row *goquery.Selection) {
		titleLink := row.Find("span.Title a").First()
		if titleLink.Length() == 0 {
			return
		}
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return
		}

		var times []string
		row.Find("span.Time").Each(func(j int, sel *goquery.Selection) {
			if t := strings.TrimSpace(sel.Text()); t != "" {
				times = append(times, t)
			}
		})

		listings = append(listings, DayListing{Title: title, Times: times})
	})

	return listings, nil
}
