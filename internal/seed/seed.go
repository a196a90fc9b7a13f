// AngelaMos | 2026
// seed.go

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatekeep-app/gatekeep/internal/creator"
	"github.com/gatekeep-app/gatekeep/internal/lead"
	"github.com/gatekeep-app/gatekeep/internal/link"
)

// Seeder writes the demo creator, links and leads on a fresh store so a
// new deployment is never empty. The creator row doubles as the "already
// seeded" marker, which makes the whole thing idempotent: run it twice and
// the second run is a no-op.
type Seeder struct {
	creators creator.Repository
	links    link.Repository
	leads    lead.Repository
	logger   *slog.Logger
}

func New(
	creators creator.Repository,
	links link.Repository,
	leads lead.Repository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		creators: creators,
		links:    links,
		leads:    leads,
		logger:   logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	exists, err := s.creators.Exists(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()

	demoCreator := &creator.Creator{
		ID:        "user_1",
		Name:      "Sarah Creator",
		Handle:    "@sarahcreates",
		Email:     "sarah@example.com",
		AvatarURL: "https://picsum.photos/id/64/200/200",
		Plan:      creator.PlanPro,
		JoinedAt:  now.AddDate(0, 0, -180),
	}

	if err := s.creators.Create(ctx, demoCreator); err != nil {
		return fmt.Errorf("seed creator: %w", err)
	}

	demoLinks := []*link.Link{
		{
			ID:           "link_1",
			CreatorID:    demoCreator.ID,
			Title:        "2024 Social Media Strategy Guide",
			Description:  "My complete PDF guide to growing on Instagram in 2024.",
			Kind:         link.KindFile,
			URL:          link.UploadPlaceholderURL,
			ThumbnailURL: "https://picsum.photos/id/20/800/600",
			IsActive:     true,
			Views:        1240,
			CreatedAt:    now.AddDate(0, 0, -5),
		},
		{
			ID:           "link_2",
			CreatorID:    demoCreator.ID,
			Title:        "Exclusive: Editing Masterclass",
			Description:  "A 30-minute deep dive into my editing workflow.",
			Kind:         link.KindVideoEmbed,
			URL:          "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ThumbnailURL: "https://picsum.photos/id/30/800/600",
			IsActive:     true,
			Views:        850,
			CreatedAt:    now.AddDate(0, 0, -2),
		},
	}

	for _, l := range demoLinks {
		if err := s.links.Create(ctx, l); err != nil {
			return fmt.Errorf("seed link %s: %w", l.ID, err)
		}
	}

	demoLeads := []*lead.Lead{
		{
			ID:         "l1",
			LinkID:     "link_1",
			Name:       "John Doe",
			Email:      "john@test.com",
			Phone:      "555-0101",
			CapturedAt: now.Add(-100 * time.Second),
		},
		{
			ID:         "l2",
			LinkID:     "link_1",
			Name:       "Jane Smith",
			Email:      "jane@test.com",
			Phone:      "555-0102",
			CapturedAt: now.Add(-200 * time.Second),
		},
		{
			ID:         "l3",
			LinkID:     "link_2",
			Name:       "Bob Wilson",
			Email:      "bob@test.com",
			Phone:      "555-0103",
			CapturedAt: now.Add(-50 * time.Second),
		},
	}

	for _, l := range demoLeads {
		// Insert, not Create: the seeded view counts already account for
		// these leads.
		if err := s.leads.Insert(ctx, l); err != nil {
			return fmt.Errorf("seed lead %s: %w", l.ID, err)
		}
	}

	s.logger.Info("seeded demo data",
		"creator", demoCreator.Handle,
		"links", len(demoLinks),
		"leads", len(demoLeads),
	)

	return nil
}
