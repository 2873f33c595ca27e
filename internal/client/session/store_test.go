package session

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// ---- fake repository ----

type fakeRepo struct {
	values map[string][]byte

	GetErr error
	SetErr error

	SetCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: map[string][]byte{}}
}

func (f *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.values[key], nil
}

func (f *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	f.SetCalls++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.values[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.values = map[string][]byte{}
	return nil
}

// ----

func newStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return NewStore(repo, logging.NewDefault(slog.LevelError)), repo
}

func testUser() models.User {
	return models.User{ID: "u1", Email: "lehrer@gs-mitte.de", Role: models.RoleLehrkraft, SchoolName: "GS Mitte"}
}

func TestLoginLogoutSequenceEndsAnonymous(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	// Any sequence of logins ending in logout leaves exactly the empty session.
	require.NoError(t, store.Login(ctx, testUser(), "tok-1"))
	require.NoError(t, store.Logout(ctx))
	require.NoError(t, store.Login(ctx, testUser(), "tok-2"))
	require.NoError(t, store.Login(ctx, testUser(), "tok-3"))
	require.NoError(t, store.Logout(ctx))

	got := store.Snapshot()
	assert.Nil(t, got.User)
	assert.Empty(t, got.Token)
	assert.False(t, got.IsAuthenticated)
	assert.False(t, store.IsAuthenticated())
}

func TestLoginSetsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)

	require.NoError(t, store.Login(ctx, testUser(), "tok"))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
	assert.Equal(t, 1, repo.SetCalls)

	got := store.Snapshot()
	require.NotNil(t, got.User)
	assert.Equal(t, "lehrer@gs-mitte.de", got.User.Email)
}

func TestLoginWithEmptyTokenStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Login(ctx, testUser(), ""))

	_, ok := store.Token()
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())
}

func TestLogoutIsIdempotentAndFiresHookOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	fired := 0
	store.SetOnLogout(func() { fired++ })

	require.NoError(t, store.Login(ctx, testUser(), "tok"))
	require.NoError(t, store.Logout(ctx))
	require.NoError(t, store.Logout(ctx))

	assert.Equal(t, 1, fired)
	assert.False(t, store.IsAuthenticated())
}

func TestUpdateUserMerges(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Login(ctx, testUser(), "tok"))

	name := "GS Sandstraße"
	require.NoError(t, store.UpdateUser(ctx, models.UserPatch{SchoolName: &name}))

	got := store.Snapshot()
	require.NotNil(t, got.User)
	assert.Equal(t, "GS Sandstraße", got.User.SchoolName)
	assert.Equal(t, "lehrer@gs-mitte.de", got.User.Email)
}

func TestUpdateUserNoopWhenAnonymous(t *testing.T) {
	ctx := context.Background()
	store, repo := newStore(t)

	name := "GS Sandstraße"
	require.NoError(t, store.UpdateUser(ctx, models.UserPatch{SchoolName: &name}))

	assert.Nil(t, store.Snapshot().User)
	assert.Equal(t, 0, repo.SetCalls)
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	log := logging.NewDefault(slog.LevelError)

	first := NewStore(repo, log)
	require.NoError(t, first.Login(ctx, testUser(), "tok"))

	second := NewStore(repo, log)
	require.NoError(t, second.Restore(ctx))

	token, ok := second.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
	require.NotNil(t, second.Snapshot().User)
	assert.Equal(t, "u1", second.Snapshot().User.ID)
}

func TestRestoreNormalizesTokenlessSession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.values["session"] = []byte(`{"user":{"id":"u1"},"token":"","is_authenticated":true}`)

	store := NewStore(repo, logging.NewDefault(slog.LevelError))
	require.NoError(t, store.Restore(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Snapshot().User)
}

func TestRestoreIgnoresCorruptValue(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.values["session"] = []byte(`{nope`)

	store := NewStore(repo, logging.NewDefault(slog.LevelError))
	require.NoError(t, store.Restore(ctx))
	assert.False(t, store.IsAuthenticated())
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	require.NoError(t, store.Login(ctx, testUser(), signed))

	got, ok := store.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Login(ctx, testUser(), "not-a-jwt"))

	_, ok := store.TokenExpiry()
	assert.False(t, ok)
}
