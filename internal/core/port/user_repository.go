package port

import (
	"context"

	"campaign-dashboard/internal/core/domain"
)

// UserRepository persists user accounts. FindByEmail returns nil, nil when
// no user has that email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Issue(user domain.User) (string, error)
	// Verify returns the claims of a valid token or an ErrUnauthenticated
	// error.
	Verify(token string) (TokenClaims, error)
}

// TokenClaims identifies the user a bearer token was issued to.
type TokenClaims struct {
	UserID string
	Email  string
}
