package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/storage"
)

func newStore(t *testing.T, backend storage.Store) *session.Store {
	t.Helper()
	s, err := session.NewStore(context.Background(), backend)
	require.NoError(t, err)
	return s
}

func TestLoginReplacesSession(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	user := session.User{ID: "u1", Name: "Amina", Email: "amina@example.com"}
	require.NoError(t, s.Login(ctx, user))

	state := s.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsGuest)
}

func TestGuestThenLoginExclusivity(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.LoginAsGuest(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.True(t, s.IsGuest())

	require.NoError(t, s.Login(ctx, session.User{ID: "u1"}))
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsGuest(), "login must supersede guest state")
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, session.User{ID: "u1"}))
	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))

	state := s.Snapshot()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsGuest)
}

func TestLogoutClearsGuest(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.LoginAsGuest(ctx))
	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsGuest())
}

func TestUpdateUserMergesPatch(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, session.User{ID: "u1", Name: "Amina", Phone: "0700"}))

	name := "Amina Okafor"
	isFarmer := true
	require.NoError(t, s.UpdateUser(ctx, session.UserPatch{Name: &name, IsFarmer: &isFarmer}))

	user := s.User()
	require.NotNil(t, user)
	assert.Equal(t, "Amina Okafor", user.Name)
	assert.Equal(t, "0700", user.Phone, "unpatched fields stay untouched")
	assert.True(t, user.IsFarmer)
	assert.True(t, s.IsAuthenticated(), "patching never touches the auth flags")
}

func TestUpdateUserWithoutUserIsNoop(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	ctx := context.Background()

	name := "Nobody"
	require.NoError(t, s.UpdateUser(ctx, session.UserPatch{Name: &name}))
	assert.Nil(t, s.User())
}

func TestRehydrationRoundTrip(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	first := newStore(t, backend)
	require.NoError(t, first.Login(ctx, session.User{ID: "u1", Name: "Amina", IsFarmer: true}))

	// Fresh instance over the same backend simulates a restart
	second := newStore(t, backend)
	assert.Equal(t, first.Snapshot(), second.Snapshot())
}
