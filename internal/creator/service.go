// AngelaMos | 2026
// service.go

package creator

import (
	"context"
	"errors"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Profile returns the sole creator record. Before first-run seeding has
// completed there is no row; callers get an empty record rather than an
// error, matching the store's contract.
func (s *Service) Profile(ctx context.Context) (*Creator, error) {
	c, err := s.repo.Get(ctx)
	if errors.Is(err, core.ErrNotFound) {
		return &Creator{}, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	req UpdateProfileRequest,
) (*Creator, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Handle != nil {
		c.Handle = *req.Handle
	}
	if req.AvatarURL != nil {
		c.AvatarURL = *req.AvatarURL
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
