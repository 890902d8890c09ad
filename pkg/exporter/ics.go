package exporter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/ritz"

	ics "github.com/arran4/golang-ical"
)

// defaultRuntime pads each session out to a typical feature length; the
// listings page publishes start times only.
const defaultRuntime = 2 * time.Hour

// GenerateICS creates an ICS calendar with one event per showtime and writes
// it to the provided writer. Events are emitted in deterministic order so
// repeated exports of the same schedule line up.
func GenerateICS(schedule ritz.Schedule, w io.Writer) error {
	if len(schedule) == 0 {
		return fmt.Errorf("nothing to export: schedule is empty")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	titles := make([]string, 0, len(schedule))
	for title := range schedule {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		return strings.ToLower(titles[i]) < strings.ToLower(titles[j])
	})

	now := time.Now()

	// UID sequence spans the whole calendar: two movies sharing a start
	// time must still get distinct event IDs.
	seq := 0

	for _, title := range titles {
		times := append([]time.Time(nil), schedule[title]...)
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

		for _, start := range times {
			event := cal.AddEvent(fmt.Sprintf("%s-%d", start.UTC().Format("20060102T150405Z"), seq))
			seq++
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(defaultRuntime))
			event.SetSummary(title)
			event.SetLocation("Ritz Cinemas, Randwick")
		}
	}

	return cal.SerializeTo(w)
}
