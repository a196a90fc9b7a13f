// AngelaMos | 2026
// service.go

package gate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/creator"
	"github.com/gatekeep-app/gatekeep/internal/lead"
	"github.com/gatekeep-app/gatekeep/internal/link"
)

type LinkSource interface {
	GetByID(ctx context.Context, id string) (*link.Link, error)
}

type LeadRecorder interface {
	Add(ctx context.Context, linkID, name, email, phone string) (*lead.Lead, error)
}

type OwnerSource interface {
	Profile(ctx context.Context) (*creator.Creator, error)
}

type Service struct {
	links       LinkSource
	leads       LeadRecorder
	owners      OwnerSource
	flags       FlagStore
	unlockDelay time.Duration
}

func NewService(
	links LinkSource,
	leads LeadRecorder,
	owners OwnerSource,
	flags FlagStore,
	unlockDelay time.Duration,
) *Service {
	return &Service{
		links:       links,
		leads:       leads,
		owners:      owners,
		flags:       flags,
		unlockDelay: unlockDelay,
	}
}

// Resolve computes the gate state for a visitor session arriving at a link.
// Unknown or deactivated links resolve to the unavailable view; otherwise
// the session's unlock flag decides between locked and unlocked.
func (s *Service) Resolve(
	ctx context.Context,
	sessionID, linkID string,
) (*View, error) {
	l, err := s.links.GetByID(ctx, linkID)
	if errors.Is(err, core.ErrNotFound) {
		return unavailableView(), nil
	}
	if err != nil {
		return nil, err
	}

	if !l.IsActive {
		return unavailableView(), nil
	}

	unlocked, err := s.flags.IsUnlocked(ctx, sessionID, linkID)
	if err != nil {
		// Fail closed: an unreachable flag store re-prompts rather than
		// leaking content.
		slog.Warn("unlock flag check failed", "link_id", linkID, "error", err)
		unlocked = false
	}

	if unlocked {
		return s.unlockedView(ctx, l), nil
	}

	return s.lockedView(ctx, l), nil
}

// Unlock runs the LOCKED -> UNLOCKING -> UNLOCKED transition: record the
// lead, set the session flag, then reveal. If the session already unlocked
// this link the call short-circuits without capturing a second lead.
func (s *Service) Unlock(
	ctx context.Context,
	sessionID, linkID string,
	req UnlockRequest,
) (*View, error) {
	l, err := s.links.GetByID(ctx, linkID)
	if errors.Is(err, core.ErrNotFound) {
		return unavailableView(), nil
	}
	if err != nil {
		return nil, err
	}

	if !l.IsActive {
		return unavailableView(), nil
	}

	already, err := s.flags.IsUnlocked(ctx, sessionID, linkID)
	if err != nil {
		slog.Warn("unlock flag check failed", "link_id", linkID, "error", err)
		already = false
	}
	if already {
		return s.unlockedView(ctx, l), nil
	}

	// Legacy clients simulated a network exchange here; the delay is kept
	// as a knob and is zero in real deployments.
	if s.unlockDelay > 0 {
		select {
		case <-time.After(s.unlockDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if _, err := s.leads.Add(ctx, l.ID, req.Name, req.Email, req.Phone); err != nil {
		return nil, err
	}

	if err := s.flags.MarkUnlocked(ctx, sessionID, linkID); err != nil {
		// The lead is durable; a lost flag only means the visitor may be
		// asked again next time.
		slog.Warn("mark unlocked failed", "link_id", linkID, "error", err)
	}

	return s.unlockedView(ctx, l), nil
}

func unavailableView() *View {
	return &View{
		Status:  StatusUnavailable,
		Message: unavailableMessage,
	}
}

func (s *Service) lockedView(ctx context.Context, l *link.Link) *View {
	return &View{
		Status: StatusLocked,
		Content: &ContentView{
			ID:           l.ID,
			Title:        l.Title,
			Description:  l.Description,
			Kind:         l.Kind,
			ThumbnailURL: l.ThumbnailURL,
		},
		Creator: s.creatorView(ctx),
	}
}

func (s *Service) unlockedView(ctx context.Context, l *link.Link) *View {
	return &View{
		Status: StatusUnlocked,
		Content: &ContentView{
			ID:           l.ID,
			Title:        l.Title,
			Description:  l.Description,
			Kind:         l.Kind,
			ThumbnailURL: l.ThumbnailURL,
			URL:          l.URL,
		},
		Creator: s.creatorView(ctx),
	}
}

func (s *Service) creatorView(ctx context.Context) *CreatorView {
	c, err := s.owners.Profile(ctx)
	if err != nil {
		slog.Warn("resolve gate creator failed", "error", err)
		return nil
	}

	return &CreatorView{Name: c.Name, AvatarURL: c.AvatarURL}
}
