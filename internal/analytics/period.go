package analytics

import (
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
)

const (
	day = 24 * time.Hour

	// hardMaxLookbackDays keeps 2*L well inside time.Duration range when no
	// maximum is configured.
	hardMaxLookbackDays = 3650
)

// SelectWindows returns two adjacent windows of lookbackDays each:
// previous = [now-2L, now-L), current = [now-L, now).
func SelectWindows(now time.Time, lookbackDays, maxDays int, loc *time.Location) (previous, current entity.Window, err error) {
	if lookbackDays <= 0 {
		return previous, current, gerr.InvalidArgument("select windows", gerr.ErrLookbackNotPositive)
	}
	if maxDays <= 0 || maxDays > hardMaxLookbackDays {
		maxDays = hardMaxLookbackDays
	}
	if lookbackDays > maxDays {
		return previous, current, gerr.InvalidArgument("select windows",
			fmt.Errorf("%w: %d > %d", gerr.ErrLookbackTooLong, lookbackDays, maxDays))
	}
	if loc == nil {
		loc = time.UTC
	}

	length := time.Duration(lookbackDays) * day
	current = entity.Window{
		Start: now.Add(-length),
		End:   now,
	}
	previous = entity.Window{
		Start: now.Add(-2 * length),
		End:   current.Start,
	}
	current.Label = windowLabel(current, loc)
	previous.Label = windowLabel(previous, loc)
	return previous, current, nil
}

func windowLabel(w entity.Window, loc *time.Location) string {
	const layout = "Jan 2, 2006"
	return w.Start.In(loc).Format(layout) + " - " + w.End.In(loc).Format(layout)
}
