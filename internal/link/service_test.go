// AngelaMos | 2026
// service_test.go

package link

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/creator"
)

type memoryRepo struct {
	links map[string]Link
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{links: make(map[string]Link)}
}

func (m *memoryRepo) Create(_ context.Context, l *Link) error {
	m.links[l.ID] = *l
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Link, error) {
	l, ok := m.links[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &l, nil
}

func (m *memoryRepo) List(_ context.Context) ([]Link, error) {
	out := make([]Link, 0, len(m.links))
	for _, l := range m.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	delete(m.links, id)
	return nil
}

func (m *memoryRepo) IncrementViews(_ context.Context, id string) error {
	if l, ok := m.links[id]; ok {
		l.Views++
		m.links[id] = l
	}
	return nil
}

type staticOwner struct {
	c creator.Creator
}

func (s staticOwner) Get(_ context.Context) (*creator.Creator, error) {
	c := s.c
	return &c, nil
}

func newTestService(repo Repository) *Service {
	owner := staticOwner{c: creator.Creator{ID: "user_1", Name: "Sarah Creator"}}
	return NewService(repo, owner, "https://gatekeep.example")
}

func TestService_Create_FillsGeneratedFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	l, err := svc.Create(context.Background(), CreateLinkRequest{
		Title:       "Editing Masterclass",
		Description: "A deep dive",
		Kind:        KindVideoEmbed,
		URL:         "https://www.youtube.com/watch?v=abc123",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(l.ID)
	assert.NoError(t, parseErr, "id should be a generated uuid")
	assert.Equal(t, "user_1", l.CreatorID)
	assert.Equal(t, int64(0), l.Views)
	assert.True(t, l.IsActive)
	assert.False(t, l.CreatedAt.IsZero())
	assert.Equal(t, "https://www.youtube.com/embed/abc123", l.URL)
	assert.Equal(t, DefaultThumbnail(KindVideoEmbed), l.ThumbnailURL)

	stored, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Title, stored.Title)
}

func TestService_Create_FileDestinationReplaced(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	l, err := svc.Create(context.Background(), CreateLinkRequest{
		Title: "Strategy Guide",
		Kind:  KindFile,
		URL:   "https://example.com/upload.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, UploadPlaceholderURL, l.URL)
}

func TestService_Create_CustomThumbnailKept(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	l, err := svc.Create(context.Background(), CreateLinkRequest{
		Title:        "Guide",
		Kind:         KindFile,
		ThumbnailURL: "https://example.com/custom.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/custom.png", l.ThumbnailURL)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	tests := []struct {
		name string
		req  CreateLinkRequest
	}{
		{"missing title", CreateLinkRequest{Kind: KindFile}},
		{"blank title", CreateLinkRequest{Title: "   ", Kind: KindFile}},
		{"invalid kind", CreateLinkRequest{Title: "x", Kind: "podcast"}},
		{"video without url", CreateLinkRequest{Title: "x", Kind: KindVideoEmbed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestService_Delete_UnknownIDIsNoOp(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), "missing")
	assert.NoError(t, err)
}

func TestService_ShareURL(t *testing.T) {
	svc := NewService(newMemoryRepo(), staticOwner{}, "https://gatekeep.example/")

	assert.Equal(t,
		"https://gatekeep.example/view/link_1",
		svc.ShareURL("link_1"),
	)
}

func TestService_TrackView_Increments(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	l, err := svc.Create(context.Background(), CreateLinkRequest{
		Title: "Guide",
		Kind:  KindFile,
	})
	require.NoError(t, err)

	require.NoError(t, svc.TrackView(context.Background(), l.ID))
	require.NoError(t, svc.TrackView(context.Background(), l.ID))

	stored, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Views)
}
