package ritz

import "time"

// Schedule maps a movie title (verbatim as scraped) to the absolute local
// times it screens at. One acquisition run builds one complete Schedule;
// callers swap it in wholesale, never mutate a shared copy.
type Schedule map[string][]time.Time

// DayListing is one parsed row of a day's listings page: a movie title and
// the raw showtime strings attached to it (e.g. "7:30 pm"). A title may
// recur if the page repeats it.
type DayListing struct {
	Title string
	Times []string
}

// FetchMessage is delivered over the acquisition channel: zero or more
// FetchProgress, then exactly one FetchComplete or FetchError.
type FetchMessage interface {
	fetchMessage()
}

// FetchProgress names the day label currently being fetched.
type FetchProgress struct {
	Label string
}

// FetchComplete carries the final aggregate schedule for the whole run.
type FetchComplete struct {
	Schedule Schedule
}

// FetchError terminates a run: the day that failed and the underlying cause.
// No partial schedule is delivered.
type FetchError struct {
	Label string
	Err   error
}

func (FetchProgress) fetchMessage() {}
func (FetchComplete) fetchMessage() {}
func (FetchError) fetchMessage()    {}

func (e FetchError) Error() string {
	return "failed to fetch " + e.Label + ": " + e.Err.Error()
}
