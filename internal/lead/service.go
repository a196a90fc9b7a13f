// AngelaMos | 2026
// service.go

package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add captures a contact for a link. All three contact fields are
// mandatory; the gate form enforces this too, but the service is the last
// line before the store.
func (s *Service) Add(
	ctx context.Context,
	linkID, name, email, phone string,
) (*Lead, error) {
	if linkID == "" {
		return nil, fmt.Errorf("add lead: link id is required: %w", core.ErrInvalidInput)
	}
	for field, value := range map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("add lead: %s is required: %w", field, core.ErrInvalidInput)
		}
	}

	l := &Lead{
		ID:         uuid.New().String(),
		LinkID:     linkID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		CapturedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) List(
	ctx context.Context,
	search string,
) ([]WithSource, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
