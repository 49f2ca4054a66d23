package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fekuna/gardentrack/internal/kv"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var secret = []byte("test-secret")

var demo = []seed.DemoAccount{
	{Name: "Admin", Email: "admin@gardentrack.co.za", Password: "admin123"},
	{Name: "Manager", Email: "manager@gardentrack.co.za", Password: "manager123"},
}

type attempts struct {
	calls []string
}

func (a *attempts) AuthAttempt(op string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	a.calls = append(a.calls, op+":"+result)
}

func newDirectory(t *testing.T, store kv.Store, opts ...Option) *Directory {
	t.Helper()
	base := []Option{WithBcryptCost(bcrypt.MinCost), WithDemoAccounts(demo)}
	d, err := NewDirectory(context.Background(), store, secret, append(base, opts...)...)
	require.NoError(t, err)
	return d
}

func TestStartsAnonymousWithDemoAccounts(t *testing.T) {
	d := newDirectory(t, kv.NewMemory())

	assert.False(t, d.IsAuthenticated())
	assert.Equal(t, 2, d.AccountCount())
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	d := newDirectory(t, store)

	require.NoError(t, d.Login(ctx, "admin@gardentrack.co.za", "admin123"))

	id, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, model.Identity{Name: "Admin", Email: "admin@gardentrack.co.za"}, id)

	raw, ok, err := store.Get(ctx, SessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	restored, err := NewTokenCodec(secret).Parse(string(raw))
	require.NoError(t, err)
	assert.Equal(t, id, restored)
}

func TestLoginFailureIsOpaque(t *testing.T) {
	ctx := context.Background()
	rec := &attempts{}
	d := newDirectory(t, kv.NewMemory(), WithRecorder(rec))

	wrongPassword := d.Login(ctx, "admin@gardentrack.co.za", "nope")
	unknownEmail := d.Login(ctx, "ghost@gardentrack.co.za", "admin123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.False(t, d.IsAuthenticated())
	assert.Equal(t, []string{"login:failure", "login:failure"}, rec.calls)
}

func TestLoginIsCaseSensitive(t *testing.T) {
	d := newDirectory(t, kv.NewMemory())

	err := d.Login(context.Background(), "ADMIN@gardentrack.co.za", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	d := newDirectory(t, store)

	err := d.Register(ctx, "Someone", "admin@gardentrack.co.za", "whatever1")

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 2, d.AccountCount())
	assert.False(t, d.IsAuthenticated())
	_, ok, _ := store.Get(ctx, AccountsKey)
	assert.False(t, ok)
}

func TestRegisterNewAccountSignsIn(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	d := newDirectory(t, store)

	require.NoError(t, d.Register(ctx, "Robin", "robin@garden.com", "sprout1"))

	assert.Equal(t, 3, d.AccountCount())
	id, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, "robin@garden.com", id.Email)

	raw, ok, err := store.Get(ctx, AccountsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []model.Account
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 3)
	assert.NotEqual(t, "sprout1", persisted[2].PasswordHash)

	d.Logout(ctx)
	require.NoError(t, d.Login(ctx, "robin@garden.com", "sprout1"))
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	d := newDirectory(t, store)
	require.NoError(t, d.Login(ctx, "manager@gardentrack.co.za", "manager123"))

	d.Logout(ctx)
	d.Logout(ctx)

	assert.False(t, d.IsAuthenticated())
	assert.Equal(t, 2, d.AccountCount())
	_, ok, _ := store.Get(ctx, SessionKey)
	assert.False(t, ok)
}

func TestRestoreAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	first := newDirectory(t, store)
	require.NoError(t, first.Register(ctx, "Robin", "robin@garden.com", "sprout1"))

	second := newDirectory(t, store)
	id, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "Robin", id.Name)
	assert.Equal(t, 3, second.AccountCount())
}

func TestTamperedSessionIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	forged, err := NewTokenCodec([]byte("other-secret")).Issue(model.Identity{Name: "Mallory", Email: "m@x.io"})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, SessionKey, []byte(forged)))

	d := newDirectory(t, store)

	assert.False(t, d.IsAuthenticated())
	_, ok, _ := store.Get(ctx, SessionKey)
	assert.False(t, ok)
}

func TestCorruptAccountListFallsBackToDemo(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, AccountsKey, []byte("{not json")))

	d := newDirectory(t, store)

	assert.Equal(t, 2, d.AccountCount())
	require.NoError(t, d.Login(ctx, "manager@gardentrack.co.za", "manager123"))
	_, ok, err := store.Get(ctx, AccountsKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// The next registration writes a clean list again.
	require.NoError(t, d.Register(ctx, "Robin", "robin@garden.com", "sprout1"))
	raw, ok, err := store.Get(ctx, AccountsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var accounts []model.Account
	require.NoError(t, json.Unmarshal(raw, &accounts))
	assert.Len(t, accounts, 3)
}

type failingKV struct {
	kv.Store
}

func (failingKV) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestPersistenceFailureDoesNotBlockLogin(t *testing.T) {
	d := newDirectory(t, failingKV{Store: kv.NewMemory()})

	require.NoError(t, d.Login(context.Background(), "admin@gardentrack.co.za", "admin123"))
	assert.True(t, d.IsAuthenticated())
}

func TestActorFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "anonymous", Actor(ctx))

	ctx = WithIdentity(ctx, model.Identity{Name: "Admin", Email: "admin@gardentrack.co.za"})
	assert.Equal(t, "admin@gardentrack.co.za", Actor(ctx))
}
