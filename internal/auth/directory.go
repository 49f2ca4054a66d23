// Package auth keeps the login accounts and the current session.
//
// The session has two states, anonymous and authenticated. Only a successful
// Login or Register authenticates, and only Logout returns to anonymous.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/fekuna/gardentrack/internal/kv"
	"github.com/fekuna/gardentrack/internal/logger"
	"github.com/fekuna/gardentrack/internal/model"
	"github.com/fekuna/gardentrack/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionKey  = "gardentrack_user"
	AccountsKey = "gardentrack_accounts"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthenticated    = errors.New("sign in required")
)

// Recorder receives the outcome of every login and registration attempt.
type Recorder interface {
	AuthAttempt(op string, ok bool)
}

type Option func(*Directory)

func WithBcryptCost(cost int) Option {
	return func(d *Directory) {
		d.cost = cost
	}
}

func WithLogger(log logger.ZapLogger) Option {
	return func(d *Directory) {
		d.logger = log
	}
}

func WithRecorder(r Recorder) Option {
	return func(d *Directory) {
		d.recorder = r
	}
}

// WithDemoAccounts sets the accounts used when no account list was persisted.
func WithDemoAccounts(accounts []seed.DemoAccount) Option {
	return func(d *Directory) {
		d.demo = accounts
	}
}

type Directory struct {
	mu       sync.Mutex
	kv       kv.Store
	tokens   *TokenCodec
	cost     int
	demo     []seed.DemoAccount
	logger   logger.ZapLogger
	recorder Recorder

	accounts []model.Account
	current  *model.Identity
}

// NewDirectory restores the persisted account list and session from store.
// A missing or unreadable account list falls back to the demo accounts; a
// missing or unreadable session starts anonymous.
func NewDirectory(ctx context.Context, store kv.Store, secret []byte, opts ...Option) (*Directory, error) {
	d := &Directory{
		kv:       store,
		tokens:   NewTokenCodec(secret),
		cost:     bcrypt.DefaultCost,
		logger:   logger.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.restoreAccounts(ctx); err != nil {
		return nil, err
	}
	if err := d.restoreSession(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Directory) restoreAccounts(ctx context.Context) error {
	raw, ok, err := d.kv.Get(ctx, AccountsKey)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	if ok {
		var accounts []model.Account
		err := json.Unmarshal(raw, &accounts)
		if err == nil {
			d.accounts = accounts
			return nil
		}
		d.logger.Warn("discarding unreadable account list", zap.Error(err))
		if err := d.kv.Delete(ctx, AccountsKey); err != nil {
			d.logger.Error("failed to delete account list", zap.Error(err))
		}
	}

	d.accounts = make([]model.Account, 0, len(d.demo))
	for _, a := range d.demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), d.cost)
		if err != nil {
			return fmt.Errorf("hash demo account %s: %w", a.Email, err)
		}
		d.accounts = append(d.accounts, model.Account{Name: a.Name, Email: a.Email, PasswordHash: string(hash)})
	}
	return nil
}

func (d *Directory) restoreSession(ctx context.Context) error {
	raw, ok, err := d.kv.Get(ctx, SessionKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil
	}
	id, err := d.tokens.Parse(string(raw))
	if err != nil {
		d.logger.Warn("discarding unreadable session record", zap.Error(err))
		if err := d.kv.Delete(ctx, SessionKey); err != nil {
			d.logger.Error("failed to delete session record", zap.Error(err))
		}
		return nil
	}
	d.current = &id
	d.logger.Debug("session restored", zap.String("email", id.Email))
	return nil
}

// Login authenticates when an account matches email and password exactly.
func (d *Directory) Login(ctx context.Context, email, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range d.accounts {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			break
		}
		d.signIn(ctx, model.Identity{Name: a.Name, Email: a.Email})
		d.recorder.AuthAttempt("login", true)
		d.logger.Info("user logged in", zap.String("email", a.Email))
		return nil
	}

	d.recorder.AuthAttempt("login", false)
	d.logger.Info("login rejected")
	return ErrInvalidCredentials
}

// Register appends a new account and signs it in. Password rules belong to
// the caller.
func (d *Directory) Register(ctx context.Context, name, email, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range d.accounts {
		if a.Email == email {
			d.recorder.AuthAttempt("register", false)
			return ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		d.recorder.AuthAttempt("register", false)
		return fmt.Errorf("hash password: %w", err)
	}

	d.accounts = append(d.accounts, model.Account{Name: name, Email: email, PasswordHash: string(hash)})
	d.persistAccounts(ctx)
	d.signIn(ctx, model.Identity{Name: name, Email: email})
	d.recorder.AuthAttempt("register", true)
	d.logger.Info("account registered", zap.String("email", email))
	return nil
}

// Logout ends the session. Accounts are untouched.
func (d *Directory) Logout(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current != nil {
		d.logger.Info("user logged out", zap.String("email", d.current.Email))
	}
	d.current = nil
	if err := d.kv.Delete(ctx, SessionKey); err != nil {
		d.logger.Error("failed to delete session record", zap.Error(err))
	}
}

func (d *Directory) Current() (model.Identity, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return model.Identity{}, false
	}
	return *d.current, true
}

func (d *Directory) IsAuthenticated() bool {
	_, ok := d.Current()
	return ok
}

func (d *Directory) AccountCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.accounts)
}

// signIn sets the session and persists it. A persistence failure is logged;
// the session stays authenticated for this process. Callers hold d.mu.
func (d *Directory) signIn(ctx context.Context, id model.Identity) {
	d.current = &id

	token, err := d.tokens.Issue(id)
	if err != nil {
		d.logger.Error("failed to sign session record", zap.Error(err))
		return
	}
	if err := d.kv.Set(ctx, SessionKey, []byte(token)); err != nil {
		d.logger.Error("failed to persist session", zap.Error(err))
	}
}

// Callers hold d.mu.
func (d *Directory) persistAccounts(ctx context.Context) {
	raw, err := json.Marshal(d.accounts)
	if err != nil {
		d.logger.Error("failed to encode accounts", zap.Error(err))
		return
	}
	if err := d.kv.Set(ctx, AccountsKey, raw); err != nil {
		d.logger.Error("failed to persist accounts", zap.Error(err))
	}
}

type nopRecorder struct{}

func (nopRecorder) AuthAttempt(string, bool) {}
