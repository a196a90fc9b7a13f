// AngelaMos | 2026
// service_test.go

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeep-app/gatekeep/internal/link"
)

type staticLinks []link.Link

func (s staticLinks) List(_ context.Context) ([]link.Link, error) {
	out := make([]link.Link, len(s))
	copy(out, s)
	return out, nil
}

type staticCount int

func (s staticCount) Count(_ context.Context) (int, error) {
	return int(s), nil
}

func TestService_Stats_Aggregates(t *testing.T) {
	links := staticLinks{
		{ID: "link_1", Title: "Guide", Views: 1240, IsActive: true},
		{ID: "link_2", Title: "Masterclass", Views: 850, IsActive: true},
		{ID: "link_3", Title: "Retired", Views: 10, IsActive: false},
	}
	svc := NewService(links, staticCount(3))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalLeads)
	assert.Equal(t, int64(2100), stats.TotalViews)
	assert.Equal(t, 2, stats.ActiveLinks, "inactive links still count views but not as active")
	assert.InDelta(t, float64(3)/2100*100, stats.ConversionRate, 1e-9)
}

func TestService_Stats_NoViewsZeroConversion(t *testing.T) {
	svc := NewService(staticLinks{}, staticCount(5))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.TotalViews)
}

func TestService_Stats_TopContentRanksByViews(t *testing.T) {
	links := staticLinks{
		{ID: "a", Title: "A", Views: 10},
		{ID: "b", Title: "B", Views: 500},
		{ID: "c", Title: "C", Views: 50},
		{ID: "d", Title: "D", Views: 200},
		{ID: "e", Title: "E", Views: 100},
	}
	svc := NewService(links, staticCount(0))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TopContent, 4)
	assert.Equal(t, "b", stats.TopContent[0].ID)
	assert.Equal(t, "d", stats.TopContent[1].ID)
	assert.Equal(t, "e", stats.TopContent[2].ID)
	assert.Equal(t, "c", stats.TopContent[3].ID)
}

func TestService_Stats_TopContentTiesKeepListOrder(t *testing.T) {
	links := staticLinks{
		{ID: "newest", Views: 100},
		{ID: "older", Views: 100},
	}
	svc := NewService(links, staticCount(0))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TopContent, 2)
	assert.Equal(t, "newest", stats.TopContent[0].ID)
	assert.Equal(t, "older", stats.TopContent[1].ID)
}

func TestService_Stats_WeeklyTrendEndsWithLiveTotal(t *testing.T) {
	svc := NewService(staticLinks{}, staticCount(42))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.WeeklyTrend, 7)
	assert.Equal(t, "Mon", stats.WeeklyTrend[0].Name)
	assert.Equal(t, 4, stats.WeeklyTrend[0].Leads)
	assert.Equal(t, "Sun", stats.WeeklyTrend[6].Name)
	assert.Equal(t, 42, stats.WeeklyTrend[6].Leads)
}
