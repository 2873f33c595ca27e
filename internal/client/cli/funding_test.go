package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

func TestFormatDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	date := func(days int) *models.Date {
		d := models.Date{Time: now.AddDate(0, 0, days)}
		return &d
	}

	tests := []struct {
		name     string
		deadline *models.Date
		want     string
	}{
		{name: "none", deadline: nil, want: "no deadline"},
		{name: "expired", deadline: date(-2), want: "expired (2026-02-27)"},
		{name: "urgent", deadline: date(3), want: "URGENT: 3 days left (2026-03-04)"},
		{name: "boundary is not urgent", deadline: date(7), want: "7 days left (2026-03-08)"},
		{name: "comfortable", deadline: date(60), want: "60 days left (2026-04-30)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDeadline(tt.deadline, now))
		})
	}
}

func TestFormatAmountRange(t *testing.T) {
	low, high := 5000.0, 25000.0

	assert.Equal(t, "5000 - 25000 EUR", formatAmountRange(&low, &high))
	assert.Equal(t, "up to 25000 EUR", formatAmountRange(nil, &high))
	assert.Equal(t, "from 5000 EUR", formatAmountRange(&low, nil))
	assert.Equal(t, "not specified", formatAmountRange(nil, nil))
}

func TestFormatFundingLine(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	max := 10000.0
	deadline := models.Date{Time: now.AddDate(0, 0, 5)}

	line := formatFundingLine(models.FundingOpportunity{
		FundingID: "fund-42",
		Title:     "Digitale Tafeln",
		MaxAmount: &max,
		Deadline:  &deadline,
	}, now)

	assert.Contains(t, line, "fund-42")
	assert.Contains(t, line, "Digitale Tafeln")
	assert.Contains(t, line, "up to 10000 EUR")
	assert.Contains(t, line, "URGENT: 5 days left")
}
