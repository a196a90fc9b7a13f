// AngelaMos | 2026
// service.go

package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/creator"
)

// OwnerSource resolves the sole creator record so new links get the right
// owner id.
type OwnerSource interface {
	Get(ctx context.Context) (*creator.Creator, error)
}

type Service struct {
	repo          Repository
	owners        OwnerSource
	publicBaseURL string
}

func NewService(repo Repository, owners OwnerSource, publicBaseURL string) *Service {
	return &Service{
		repo:          repo,
		owners:        owners,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *Service) List(ctx context.Context) ([]Link, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Link, error) {
	return s.repo.GetByID(ctx, id)
}

// Create normalizes the destination per content kind, fills the generated
// fields and persists the link. Handlers validate the request shape, but
// the service re-checks the required fields so no caller can slip an
// incomplete record into the store.
func (s *Service) Create(
	ctx context.Context,
	req CreateLinkRequest,
) (*Link, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("create link: title is required: %w", core.ErrInvalidInput)
	}
	if !ValidKind(req.Kind) {
		return nil, fmt.Errorf("create link: invalid kind %q: %w", req.Kind, core.ErrInvalidInput)
	}
	if req.Kind == KindVideoEmbed && strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("create link: url is required for video links: %w", core.ErrInvalidInput)
	}

	owner, err := s.owners.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve link owner: %w", err)
	}

	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		thumbnail = DefaultThumbnail(req.Kind)
	}

	l := &Link{
		ID:           uuid.New().String(),
		CreatorID:    owner.ID,
		Title:        req.Title,
		Description:  req.Description,
		Kind:         req.Kind,
		URL:          NormalizeDestination(req.Kind, req.URL),
		ThumbnailURL: thumbnail,
		IsActive:     true,
		Views:        0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) TrackView(ctx context.Context, id string) error {
	return s.repo.IncrementViews(ctx, id)
}

// ShareURL derives the public gate address for a link id. Pure string
// work, no storage involved.
func (s *Service) ShareURL(id string) string {
	return s.publicBaseURL + "/view/" + id
}
