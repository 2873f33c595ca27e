package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

func TestDashboard_RefreshJoinsBothFetches(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	apps := &fakeApplicationsAPI{Items: []models.Application{
		{ApplicationID: "a1", Status: models.StatusEntwurf},
		{ApplicationID: "a2", Status: models.StatusEntwurf},
		{ApplicationID: "a3", Status: models.StatusEingereicht},
	}}
	funding := &fakeFundingAPI{Items: []models.FundingOpportunity{
		{FundingID: "f1", MaxAmount: amount(10000), Deadline: deadlineIn(now, 12)},
		{FundingID: "f2", MaxAmount: amount(40000), Deadline: deadlineIn(now, 90)},
	}}
	c := NewDashboard(apps, funding, testLogger())
	c.now = func() time.Time { return now }

	require.NoError(t, c.Refresh(context.Background()))

	assert.True(t, c.Loaded())
	assert.Len(t, c.Applications(), 3)
	assert.Len(t, c.Opportunities(), 2)
	assert.Equal(t, map[string]string{"limit": "8"}, funding.LastFilters)

	counts := c.StatusCounts()
	assert.Equal(t, 2, counts[models.StatusEntwurf])
	assert.Equal(t, 1, counts[models.StatusEingereicht])

	assert.Equal(t, 1, c.DeadlinesSoonCount())
	assert.Equal(t, 50000.0, c.TotalMaxFunding())
}

func TestDashboard_RefreshFailsWhenEitherFetchFails(t *testing.T) {
	apps := &fakeApplicationsAPI{Err: errors.New("backend down")}
	funding := &fakeFundingAPI{}
	c := NewDashboard(apps, funding, testLogger())

	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Applications())
}

func TestDashboard_RefreshKeepsPreviousStateOnFailure(t *testing.T) {
	apps := &fakeApplicationsAPI{Items: []models.Application{
		{ApplicationID: "a1", Status: models.StatusEntwurf},
	}}
	funding := &fakeFundingAPI{}
	c := NewDashboard(apps, funding, testLogger())

	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Applications(), 1)

	apps.Err = errors.New("backend down")
	require.Error(t, c.Refresh(context.Background()))

	assert.Len(t, c.Applications(), 1)
	assert.True(t, c.Loaded())
}
