// AngelaMos | 2026
// service_test.go

package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/creator"
	"github.com/gatekeep-app/gatekeep/internal/lead"
	"github.com/gatekeep-app/gatekeep/internal/link"
)

type fakeLinks struct {
	links map[string]link.Link
}

func (f *fakeLinks) GetByID(_ context.Context, id string) (*link.Link, error) {
	l, ok := f.links[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &l, nil
}

type fakeLeads struct {
	added []lead.Lead
	err   error
}

func (f *fakeLeads) Add(
	_ context.Context,
	linkID, name, email, phone string,
) (*lead.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	l := lead.Lead{ID: "lead_x", LinkID: linkID, Name: name, Email: email, Phone: phone}
	f.added = append(f.added, l)
	return &l, nil
}

type fakeOwner struct{}

func (fakeOwner) Profile(_ context.Context) (*creator.Creator, error) {
	return &creator.Creator{
		Name:      "Sarah Creator",
		AvatarURL: "https://picsum.photos/id/64/200/200",
	}, nil
}

type memoryFlags struct {
	set map[string]bool
	err error
}

func newMemoryFlags() *memoryFlags {
	return &memoryFlags{set: make(map[string]bool)}
}

func (m *memoryFlags) IsUnlocked(
	_ context.Context,
	sessionID, linkID string,
) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.set[sessionID+":"+linkID], nil
}

func (m *memoryFlags) MarkUnlocked(
	_ context.Context,
	sessionID, linkID string,
) error {
	if m.err != nil {
		return m.err
	}
	m.set[sessionID+":"+linkID] = true
	return nil
}

func activeLink() link.Link {
	return link.Link{
		ID:           "link_1",
		Title:        "Strategy Guide",
		Description:  "A guide",
		Kind:         link.KindFile,
		URL:          link.UploadPlaceholderURL,
		ThumbnailURL: "https://picsum.photos/id/20/800/600",
		IsActive:     true,
	}
}

func newTestService(
	links *fakeLinks,
	leads *fakeLeads,
	flags FlagStore,
) *Service {
	return NewService(links, leads, fakeOwner{}, flags, 0)
}

func unlockReq() UnlockRequest {
	return UnlockRequest{Name: "John Doe", Email: "john@test.com", Phone: "555-0101"}
}

func TestService_Resolve_UnknownLinkUnavailable(t *testing.T) {
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{}},
		&fakeLeads{},
		newMemoryFlags(),
	)

	view, err := svc.Resolve(context.Background(), "sess_1", "nope")
	require.NoError(t, err)

	assert.Equal(t, StatusUnavailable, view.Status)
	assert.NotEmpty(t, view.Message)
	assert.Nil(t, view.Content, "unavailable view must not describe the content")
	assert.Nil(t, view.Creator)
}

func TestService_Resolve_InactiveLinkUnavailable(t *testing.T) {
	l := activeLink()
	l.IsActive = false
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{},
		newMemoryFlags(),
	)

	view, err := svc.Resolve(context.Background(), "sess_1", l.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusUnavailable, view.Status)
	assert.Nil(t, view.Content)
}

func TestService_Resolve_LockedOmitsDestination(t *testing.T) {
	l := activeLink()
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{},
		newMemoryFlags(),
	)

	view, err := svc.Resolve(context.Background(), "sess_1", l.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusLocked, view.Status)
	require.NotNil(t, view.Content)
	assert.Equal(t, l.Title, view.Content.Title)
	assert.Equal(t, l.ThumbnailURL, view.Content.ThumbnailURL)
	assert.Empty(t, view.Content.URL, "locked view must not leak the destination")
	require.NotNil(t, view.Creator)
	assert.Equal(t, "Sarah Creator", view.Creator.Name)
}

func TestService_Unlock_RecordsLeadAndReveals(t *testing.T) {
	l := activeLink()
	leads := &fakeLeads{}
	flags := newMemoryFlags()
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		leads,
		flags,
	)

	view, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.NoError(t, err)

	assert.Equal(t, StatusUnlocked, view.Status)
	require.NotNil(t, view.Content)
	assert.Equal(t, l.URL, view.Content.URL)

	require.Len(t, leads.added, 1)
	assert.Equal(t, l.ID, leads.added[0].LinkID)
	assert.True(t, flags.set["sess_1:"+l.ID])
}

func TestService_Unlock_IdempotentPerSession(t *testing.T) {
	l := activeLink()
	leads := &fakeLeads{}
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		leads,
		newMemoryFlags(),
	)

	_, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.NoError(t, err)

	view, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.NoError(t, err)

	assert.Equal(t, StatusUnlocked, view.Status)
	assert.Len(t, leads.added, 1, "repeat unlock must not capture a second lead")
}

func TestService_Unlock_SeparateSessionsCaptureSeparately(t *testing.T) {
	l := activeLink()
	leads := &fakeLeads{}
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		leads,
		newMemoryFlags(),
	)

	_, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.NoError(t, err)
	_, err = svc.Unlock(context.Background(), "sess_2", l.ID, unlockReq())
	require.NoError(t, err)

	assert.Len(t, leads.added, 2)
}

func TestService_Resolve_AfterUnlockIsUnlocked(t *testing.T) {
	l := activeLink()
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{},
		newMemoryFlags(),
	)

	_, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.NoError(t, err)

	view, err := svc.Resolve(context.Background(), "sess_1", l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusUnlocked, view.Status)

	other, err := svc.Resolve(context.Background(), "sess_2", l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusLocked, other.Status,
		"unlock is scoped to the session that submitted the form")
}

func TestService_Resolve_FlagStoreErrorFailsClosed(t *testing.T) {
	l := activeLink()
	flags := newMemoryFlags()
	flags.err = errors.New("redis down")
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{},
		flags,
	)

	view, err := svc.Resolve(context.Background(), "sess_1", l.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusLocked, view.Status)
	assert.Empty(t, view.Content.URL)
}

func TestService_Unlock_LeadFailureDoesNotUnlock(t *testing.T) {
	l := activeLink()
	flags := newMemoryFlags()
	svc := newTestService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{err: errors.New("insert failed")},
		flags,
	)

	_, err := svc.Unlock(context.Background(), "sess_1", l.ID, unlockReq())
	require.Error(t, err)
	assert.False(t, flags.set["sess_1:"+l.ID],
		"failed capture must leave the gate locked")
}

func TestService_Unlock_DelayRespectsContext(t *testing.T) {
	l := activeLink()
	svc := NewService(
		&fakeLinks{links: map[string]link.Link{l.ID: l}},
		&fakeLeads{},
		fakeOwner{},
		newMemoryFlags(),
		5*time.Second,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Unlock(ctx, "sess_1", l.ID, unlockReq())
	assert.ErrorIs(t, err, context.Canceled)
}
