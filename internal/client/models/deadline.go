package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Deadline thresholds. Card-level urgency and the list-level
// "deadlines soon" count use different windows on purpose.
const (
	UrgentDeadlineDays = 7
	DeadlineSoonDays   = 30
)

// Date is a calendar date that unmarshals from both plain "2006-01-02"
// values and full RFC 3339 timestamps, which the backend mixes freely.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unparsable date %q", s)
}

// DaysUntil returns the number of whole days from now until d, rounded up.
// The second return value is false when d is nil.
func DaysUntil(d *Date, now time.Time) (int, bool) {
	if d == nil {
		return 0, false
	}
	days := int(math.Ceil(d.Sub(now).Hours() / 24))
	return days, true
}

// DeadlineWithin reports whether d is in the future and strictly closer
// than the given number of days. Past deadlines are never "within".
func DeadlineWithin(d *Date, now time.Time, days int) bool {
	n, ok := DaysUntil(d, now)
	return ok && n > 0 && n < days
}
