package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateIn(days int, now time.Time) *Date {
	return &Date{Time: now.Add(time.Duration(days) * 24 * time.Hour)}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil deadline", func(t *testing.T) {
		_, ok := DaysUntil(nil, now)
		assert.False(t, ok)
	})

	t.Run("whole days round up", func(t *testing.T) {
		d := &Date{Time: now.Add(36 * time.Hour)}
		n, ok := DaysUntil(d, now)
		require.True(t, ok)
		assert.Equal(t, 2, n)
	})

	t.Run("past deadline is negative", func(t *testing.T) {
		n, ok := DaysUntil(dateIn(-3, now), now)
		require.True(t, ok)
		assert.Negative(t, n)
	})
}

// A deadline 5 days out is urgent at both thresholds; one 20 days out only
// at the 30-day threshold. The two windows must stay independent.
func TestDeadlineWithinThresholds(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	in5 := dateIn(5, now)
	assert.True(t, DeadlineWithin(in5, now, UrgentDeadlineDays))
	assert.True(t, DeadlineWithin(in5, now, DeadlineSoonDays))

	in20 := dateIn(20, now)
	assert.False(t, DeadlineWithin(in20, now, UrgentDeadlineDays))
	assert.True(t, DeadlineWithin(in20, now, DeadlineSoonDays))

	passed := dateIn(-1, now)
	assert.False(t, DeadlineWithin(passed, now, DeadlineSoonDays))

	assert.False(t, DeadlineWithin(nil, now, DeadlineSoonDays))
}

func TestDateUnmarshalLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain date", input: `"2026-10-15"`, want: "2026-10-15"},
		{name: "rfc3339", input: `"2026-10-15T08:30:00Z"`, want: "2026-10-15"},
		{name: "no timezone", input: `"2026-10-15T08:30:00"`, want: "2026-10-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d.Format("2006-01-02"))
		})
	}

	t.Run("garbage fails", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"next week"`), &d))
	})

	t.Run("null is zero", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})
}
