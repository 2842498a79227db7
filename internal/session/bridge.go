package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/api"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// State is the authentication state of the shopping session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// AuthAPI is the remote collaborator for account operations. api.Client
// implements it.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Register(ctx context.Context, reg api.Registration) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Syncable is the slice of store behavior the bridge drives on auth
// transitions. Both the cart and wishlist stores satisfy it.
type Syncable interface {
	Fetch(ctx context.Context) error
	ClearLocal(ctx context.Context)
}

// Bridge ties authentication state to the item stores. Logging in resolves
// the server's carts into local state; logging out drops local state without
// touching the server's copy, so the account's cart survives for the next
// login. It also serves as the token source for the API client.
type Bridge struct {
	client AuthAPI
	stores []Syncable
	logger *slog.Logger

	mu           sync.RWMutex
	state        State
	user         *api.User
	accessToken  string
	refreshToken string
}

// NewBridge creates a session bridge in the anonymous state. The given
// stores are fetched on login and cleared on logout, in order.
func NewBridge(client AuthAPI, logger *slog.Logger, stores ...Syncable) *Bridge {
	return &Bridge{
		client: client,
		stores: stores,
		logger: logger,
		state:  Anonymous,
	}
}

// Bind attaches the auth collaborator and stores after construction. The
// bridge is the API client's token source, so it has to exist before the
// client does; Bind closes that loop. Must be called before any auth
// operation and before the bridge is shared.
func (b *Bridge) Bind(client AuthAPI, stores ...Syncable) {
	b.client = client
	b.stores = stores
}

// Token returns the current access token, empty when anonymous. Implements
// api.TokenSource.
func (b *Bridge) Token() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.accessToken
}

// State returns the current session state.
func (b *Bridge) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// User returns the authenticated account, nil when anonymous.
func (b *Bridge) User() *api.User {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.user
}

// Login authenticates and transitions the session to the authenticated
// state, then fetches every attached store so local state reflects the
// account's server-side cart and wishlist. Fetch failures do not fail the
// login; the stores stay unsynced and recover on their next fetch. Logging in
// while already authenticated is a conflict.
func (b *Bridge) Login(ctx context.Context, creds api.Credentials) (*api.User, error) {
	b.mu.RLock()
	state := b.state
	b.mu.RUnlock()
	if state == Authenticated {
		return nil, apperrors.Conflict("already logged in")
	}

	resp, err := b.client.Login(ctx, creds)
	if err != nil {
		b.logger.WarnContext(ctx, "login failed",
			slog.String("email", creds.Email),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	b.establish(resp)
	b.logger.InfoContext(ctx, "session authenticated",
		slog.Int64("user_id", resp.User.ID),
	)

	b.fetchStores(ctx)
	return b.User(), nil
}

// Register creates an account and establishes an authenticated session with
// it, then fetches the attached stores like Login does.
func (b *Bridge) Register(ctx context.Context, reg api.Registration) (*api.User, error) {
	b.mu.RLock()
	state := b.state
	b.mu.RUnlock()
	if state == Authenticated {
		return nil, apperrors.Conflict("already logged in")
	}

	resp, err := b.client.Register(ctx, reg)
	if err != nil {
		b.logger.WarnContext(ctx, "registration failed",
			slog.String("email", reg.Email),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	b.establish(resp)
	b.logger.InfoContext(ctx, "account registered",
		slog.Int64("user_id", resp.User.ID),
	)

	b.fetchStores(ctx)
	return b.User(), nil
}

// Logout revokes the session server-side on a best-effort basis, then drops
// tokens and clears the attached stores locally. The server keeps the
// account's cart, so nothing is deleted remotely. Logging out while
// anonymous is a no-op.
func (b *Bridge) Logout(ctx context.Context) error {
	b.mu.RLock()
	state := b.state
	b.mu.RUnlock()
	if state == Anonymous {
		return nil
	}

	if err := b.client.Logout(ctx); err != nil {
		b.logger.WarnContext(ctx, "remote logout failed, dropping session anyway",
			slog.String("error", err.Error()),
		)
	}

	b.mu.Lock()
	b.state = Anonymous
	b.user = nil
	b.accessToken = ""
	b.refreshToken = ""
	b.mu.Unlock()

	for _, s := range b.stores {
		s.ClearLocal(ctx)
	}

	b.logger.InfoContext(ctx, "session ended")
	return nil
}

// Expired reports whether the access token's exp claim has passed. The claim
// is read without signature verification; only the server can truly judge the
// token, but an expired claim lets callers prompt for login before a doomed
// request. A token without an exp claim is treated as live.
func (b *Bridge) Expired() bool {
	b.mu.RLock()
	token := b.accessToken
	b.mu.RUnlock()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (b *Bridge) establish(resp *api.AuthResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = Authenticated
	user := resp.User
	b.user = &user
	b.accessToken = resp.AccessToken
	b.refreshToken = resp.RefreshToken
}

func (b *Bridge) fetchStores(ctx context.Context) {
	for _, s := range b.stores {
		if err := s.Fetch(ctx); err != nil {
			b.logger.WarnContext(ctx, "post-login store fetch failed",
				slog.String("error", err.Error()),
			)
		}
	}
}
