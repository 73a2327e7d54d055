package itinerary

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// LocalDateTimeLayout is the vendor's local wall-clock timestamp format.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// MaxDuration sorts offers with no duration after every real one.
const MaxDuration = math.MaxInt

var (
	hoursPattern   = regexp.MustCompile(`(\d+)H`)
	minutesPattern = regexp.MustCompile(`(\d+)M`)
)

// ParseISODuration converts strings like "PT8H30M" into minutes. Hours and
// minutes are extracted independently and a missing part counts as zero.
// Day components are not interpreted.
func ParseISODuration(duration string) int {
	total := 0

	if m := hoursPattern.FindStringSubmatch(duration); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
		}
	}
	if m := minutesPattern.FindStringSubmatch(duration); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			total += mins
		}
	}

	return total
}

// ParseLocalDateTime reads the leading "yyyy-MM-ddTHH:mm:ss" of a vendor
// timestamp. Anything after it (fractional seconds, an offset) is ignored so
// the result always carries the local wall-clock hour.
func ParseLocalDateTime(s string) (time.Time, bool) {
	if len(s) > len(LocalDateTimeLayout) {
		s = s[:len(LocalDateTimeLayout)]
	}
	t, err := time.Parse(LocalDateTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
