// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"sort"

	"github.com/gatekeep-app/gatekeep/internal/link"
)

const topContentSize = 4

type LinkLister interface {
	List(ctx context.Context) ([]link.Link, error)
}

type LeadCounter interface {
	Count(ctx context.Context) (int, error)
}

type Service struct {
	links LinkLister
	leads LeadCounter
}

func NewService(links LinkLister, leads LeadCounter) *Service {
	return &Service{links: links, leads: leads}
}

// Stats aggregates over fresh snapshots of the links and leads
// collections; nothing here is stored, so the overview is always
// consistent with the lists it links to.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	links, err := s.links.List(ctx)
	if err != nil {
		return nil, err
	}

	totalLeads, err := s.leads.Count(ctx)
	if err != nil {
		return nil, err
	}

	var totalViews int64
	activeLinks := 0
	for i := range links {
		totalViews += links[i].Views
		if links[i].IsActive {
			activeLinks++
		}
	}

	conversionRate := 0.0
	if totalViews > 0 {
		conversionRate = float64(totalLeads) / float64(totalViews) * 100
	}

	return &StatsResponse{
		TotalLeads:     totalLeads,
		TotalViews:     totalViews,
		ActiveLinks:    activeLinks,
		ConversionRate: conversionRate,
		TopContent:     topContent(links),
		WeeklyTrend:    weeklyTrend(totalLeads),
	}, nil
}

// topContent ranks by views descending. The sort is stable so ties keep
// the collection's own newest-first order.
func topContent(links []link.Link) []TopLink {
	ranked := make([]link.Link, len(links))
	copy(ranked, links)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})

	if len(ranked) > topContentSize {
		ranked = ranked[:topContentSize]
	}

	top := make([]TopLink, 0, len(ranked))
	for i := range ranked {
		top = append(top, TopLink{
			ID:    ranked[i].ID,
			Title: ranked[i].Title,
			Views: ranked[i].Views,
		})
	}

	return top
}

// weeklyTrend is the illustrative series the overview chart has always
// shown: fixed points for Mon through Sat, with the final point replaced
// by the live lead total.
func weeklyTrend(totalLeads int) []TrendPoint {
	return []TrendPoint{
		{Name: "Mon", Leads: 4},
		{Name: "Tue", Leads: 7},
		{Name: "Wed", Leads: 3},
		{Name: "Thu", Leads: 12},
		{Name: "Fri", Leads: 8},
		{Name: "Sat", Leads: 15},
		{Name: "Sun", Leads: totalLeads},
	}
}
