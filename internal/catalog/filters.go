package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cast"

	"github.com/docsrv/docsrv/internal/errors"
	"github.com/docsrv/docsrv/internal/logging"
)

// timeformat escalates through these units, dividing by 60 while the
// scaled magnitude stays >= 1.
var timeformatUnits = []string{"seconds", "minutes", "hours"}

// Timeformat renders a duration for humans. Without options the input
// is a duration in seconds and the output picks the largest unit that
// keeps the magnitude >= 1, eliding a trailing ".0" (125 -> "2.1
// minutes", 120 -> "2 minutes"). With the "relative" option the input
// is a timestamp (time.Time or RFC3339 string) phrased relative to
// now ("3 hours ago").
func Timeformat(value interface{}, opts ...string) (interface{}, error) {
	if hasOpt(opts, "relative") {
		ts, err := toTime(value)
		if err != nil {
			return nil, err
		}
		return relativeTime(ts, time.Now()), nil
	}

	secs, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, &errors.FilterError{
			Filter: "timeformat",
			Msg:    "expected duration filter input to be numeric",
			Value:  value,
		}
	}

	unit := timeformatUnits[0]
	for _, next := range timeformatUnits[1:] {
		if secs/60 >= 1 {
			unit = next
			secs /= 60
		} else {
			break
		}
	}

	magnitude := strings.TrimSuffix(fmt.Sprintf("%.1f", secs), ".0")
	return fmt.Sprintf("%s %s", magnitude, unit), nil
}

// relativeTime phrases how long ago ts was, seen from now.
func relativeTime(ts, now time.Time) string {
	delta := now.Sub(ts)
	seconds := int64(delta.Seconds())

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 2*60:
		return "one minute ago"
	case seconds < 60*60:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 2*60*60:
		return "one hour ago"
	case seconds < 24*60*60:
		return fmt.Sprintf("%d hours ago", seconds/(60*60))
	case seconds < 2*24*60*60:
		return "one day ago"
	case seconds < 30*24*60*60:
		return fmt.Sprintf("%d days ago", seconds/(24*60*60))
	case seconds < 2*30*24*60*60:
		return "one month ago"
	case seconds < 365*24*60*60:
		return fmt.Sprintf("%d months ago", seconds/(30*24*60*60))
	case seconds < 2*365*24*60*60:
		return "one year ago"
	default:
		return fmt.Sprintf("%d years ago", seconds/(365*24*60*60))
	}
}

func toTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	}

	s, err := cast.ToStringE(value)
	if err == nil {
		if ts, parseErr := time.Parse(time.RFC3339, s); parseErr == nil {
			return ts, nil
		}
	}
	return time.Time{}, &errors.FilterError{
		Filter: "timeformat",
		Msg:    "expected relative filter input to be a timestamp",
		Value:  value,
	}
}

// Dedent strips leading whitespace from every line of a multi-line
// string independently, preserving blank lines.
func Dedent(value interface{}, _ ...string) (interface{}, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, &errors.FilterError{
			Filter: "dedent",
			Msg:    "expected dedent filter input to be a string",
			Value:  value,
		}
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, "\n"), nil
}

// Dbg returns a diagnostic passthrough filter: it logs the value's
// debug representation and returns the value unchanged.
func Dbg(logger logging.Logger) FilterFunc {
	log := logger.WithComponent("templates")
	return func(value interface{}, _ ...string) (interface{}, error) {
		log.Debug(context.Background(), "dbg filter", "value", fmt.Sprintf("%#v", value))
		return value, nil
	}
}

func hasOpt(opts []string, name string) bool {
	for _, opt := range opts {
		if opt == name {
			return true
		}
	}
	return false
}
