package ritz

import (
	"io"
	"time"
)

// fetchChannelSize leaves enough headroom for one progress message per day
// plus the terminal message, so the worker never blocks on send and message
// delivery is never delayed by the politeness sleep.
const fetchChannelSize = 16

// FetchDay fetches and parses a single day's listings page and resolves its
// showtimes onto the given calendar day. Showtime strings that fail to parse
// are skipped individually; the rest of the day is unaffected.
func (c *Client) FetchDay(label string, date time.Time) (Schedule, error) {
	var listings []DayListing

	err := c.fetchAndParse(label, func(body io.Reader) error {
		var parseErr error
		listings, parseErr = ParseListing(body)
		return parseErr
	})
	if err != nil {
		return nil, err
	}

	day := make(Schedule)
	mergeListings(day, listings, date)
	return day, nil
}

// FetchAllShowtimes starts a full acquisition run in its own goroutine and
// returns the channel it reports on. The run fetches every published day in
// discovery order, emitting a FetchProgress before each page, then exactly
// one FetchComplete carrying the aggregate schedule, or a FetchError, which
// aborts the run with no partial results. The channel is closed after the
// terminal message. There is no cancellation: callers gate on at most one
// run in flight and poll the channel without blocking.
func (c *Client) FetchAllShowtimes() <-chan FetchMessage {
	ch := make(chan FetchMessage, fetchChannelSize)
	go c.fetchAll(ch)
	return ch
}

func (c *Client) fetchAll(ch chan<- FetchMessage) {
	defer close(ch)

	today := c.now()
	labels := c.dayLabels(today)

	schedule := make(Schedule)

	for i, label := range labels {
		ch <- FetchProgress{Label: label}

		if i > 0 {
			c.politeness()
		}

		date := ResolveDayLabel(label, today)
		day, err := c.FetchDay(label, date)
		if err != nil {
			ch <- FetchError{Label: label, Err: err}
			return
		}

		for title, times := range day {
			schedule[title] = append(schedule[title], times...)
		}
	}

	ch <- FetchComplete{Schedule: schedule}
}

// mergeListings resolves each raw showtime string against the day's date and
// adds it to the schedule under its title. Malformed clock strings are
// dropped entry by entry so one bad time can't poison the rest of the day.
func mergeListings(schedule Schedule, listings []DayListing, date time.Time) {
	for _, listing := range listings {
		for _, raw := range listing.Times {
			offset, err := ParseClockOffset(raw)
			if err != nil {
				continue
			}
			schedule[listing.Title] = append(schedule[listing.Title], AbsoluteShowtime(date, offset))
		}
	}
}
