// AngelaMos | 2026
// service_test.go

package creator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type memoryRepo struct {
	row *Creator
}

func (m *memoryRepo) Get(_ context.Context) (*Creator, error) {
	if m.row == nil {
		return nil, core.ErrNotFound
	}
	c := *m.row
	return &c, nil
}

func (m *memoryRepo) Create(_ context.Context, c *Creator) error {
	cp := *c
	m.row = &cp
	return nil
}

func (m *memoryRepo) Update(_ context.Context, c *Creator) error {
	if m.row == nil {
		return core.ErrNotFound
	}
	cp := *c
	m.row = &cp
	return nil
}

func (m *memoryRepo) Exists(_ context.Context) (bool, error) {
	return m.row != nil, nil
}

func TestService_Profile_EmptyBeforeSeeding(t *testing.T) {
	svc := NewService(&memoryRepo{})

	c, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.ID)
	assert.Empty(t, c.Name)
}

func TestService_Profile_ReturnsStoredCreator(t *testing.T) {
	repo := &memoryRepo{row: &Creator{ID: "user_1", Name: "Sarah Creator"}}
	svc := NewService(repo)

	c, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user_1", c.ID)
}

func TestService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	repo := &memoryRepo{row: &Creator{
		ID:        "user_1",
		Name:      "Sarah Creator",
		Handle:    "@sarahcreates",
		AvatarURL: "https://picsum.photos/id/64/200/200",
	}}
	svc := NewService(repo)

	newName := "Sarah C."
	c, err := svc.UpdateProfile(context.Background(), UpdateProfileRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sarah C.", c.Name)
	assert.Equal(t, "@sarahcreates", c.Handle, "unset fields stay untouched")
	assert.Equal(t, "https://picsum.photos/id/64/200/200", c.AvatarURL)
}

func TestService_UpdateProfile_NoCreatorRow(t *testing.T) {
	svc := NewService(&memoryRepo{})

	name := "x"
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileRequest{
		Name: &name,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
