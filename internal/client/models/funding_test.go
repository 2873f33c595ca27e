package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFundingID(t *testing.T) {
	tests := []struct {
		name                      string
		fundingID, id, uuid, slug string
		want                      string
	}{
		{name: "funding_id wins", fundingID: "f1", id: "i1", uuid: "u1", slug: "s1", want: "f1"},
		{name: "id next", id: "i1", uuid: "u1", slug: "s1", want: "i1"},
		{name: "uuid next", uuid: "u1", slug: "s1", want: "u1"},
		{name: "slug last", slug: "s1", want: "s1"},
		{name: "all empty", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFundingID(tt.fundingID, tt.id, tt.uuid, tt.slug)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFundingOpportunityUnmarshalIDFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "funding_id", body: `{"funding_id":"abc","title":"T"}`, want: "abc"},
		{name: "id fallback", body: `{"id":"def","title":"T"}`, want: "def"},
		{name: "uuid fallback", body: `{"uuid":"ghi","title":"T"}`, want: "ghi"},
		{name: "slug fallback", body: `{"slug":"digitalpakt","title":"T"}`, want: "digitalpakt"},
		{name: "funding_id beats id", body: `{"funding_id":"abc","id":"def"}`, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FundingOpportunity
			require.NoError(t, json.Unmarshal([]byte(tt.body), &f))
			assert.Equal(t, tt.want, f.FundingID)
		})
	}
}

func TestFundingOpportunityUnmarshalFull(t *testing.T) {
	body := `{
		"funding_id": "fund-123",
		"title": "Digitale Grundschule",
		"provider": "BMBF",
		"region": "Berlin",
		"funding_area": "Digitalisierung",
		"min_funding_amount": 5000,
		"max_funding_amount": 50000,
		"deadline": "2026-10-15",
		"tags": ["digital", "grundschule"]
	}`

	var f FundingOpportunity
	require.NoError(t, json.Unmarshal([]byte(body), &f))

	assert.Equal(t, "fund-123", f.FundingID)
	assert.Equal(t, "BMBF", f.Provider)
	require.NotNil(t, f.MaxAmount)
	assert.Equal(t, 50000.0, *f.MaxAmount)
	require.NotNil(t, f.Deadline)
	assert.Equal(t, "2026-10-15", f.Deadline.Format("2006-01-02"))
	assert.Equal(t, []string{"digital", "grundschule"}, f.Tags)
}
