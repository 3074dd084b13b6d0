// Package identity authenticates admin users and tracks the signed-in
// principal for the rest of the application.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"vertexit-site/internal/domain"
	"vertexit-site/internal/repository/users"
)

// Provider-level auth failures, mapped to a fixed set so handlers can show
// stable user-facing messages.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTooManyAttempts    = errors.New("too many sign-in attempts")
)

// Principal is the authenticated identity attached to a session.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Provider is the identity boundary: credential sign-in, token
// verification, and a session-change stream. Subscribe delivers the
// current principal synchronously on registration, then again after every
// sign-in and sign-out.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Principal, string, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*Principal, error)
	Subscribe(fn func(*Principal)) (cancel func())
}

// PasswordProvider authenticates against the users collection with bcrypt
// hashes and keeps sessions in a TokenStore.
type PasswordProvider struct {
	users  users.Repository
	tokens TokenStore

	mu      sync.Mutex
	last    *Principal
	nextSub int
	subs    map[int]func(*Principal)
}

func NewPasswordProvider(repo users.Repository, tokens TokenStore) *PasswordProvider {
	return &PasswordProvider{
		users:  repo,
		tokens: tokens,
		subs:   make(map[int]func(*Principal)),
	}
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (*Principal, string, error) {
	u, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("look up user: %w", err)
	}
	if u.Disabled {
		return nil, "", ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	principal := &Principal{ID: u.ID, Email: u.Email, Name: u.Name}
	token, err := p.tokens.Issue(ctx, *principal)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	p.notify(principal)
	return principal, token, nil
}

func (p *PasswordProvider) SignOut(ctx context.Context, token string) error {
	if err := p.tokens.Revoke(ctx, token); err != nil {
		return err
	}
	p.notify(nil)
	return nil
}

func (p *PasswordProvider) Verify(ctx context.Context, token string) (*Principal, error) {
	principal, err := p.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	// Disabling an account kills its live sessions too.
	u, err := p.users.Get(ctx, principal.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if u.Disabled {
		return nil, ErrAccountDisabled
	}
	return principal, nil
}

func (p *PasswordProvider) Subscribe(fn func(*Principal)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	current := p.last
	p.mu.Unlock()

	fn(current)
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *PasswordProvider) notify(principal *Principal) {
	p.mu.Lock()
	p.last = principal
	subs := make([]func(*Principal), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(principal)
	}
}

// HashPassword produces the bcrypt hash stored on a user record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
