package usecase

import (
	"context"
	"strings"
	"sync"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password.
const invalidCredentials = "Invalid credentials, please check your email or password"

// AuthUseCase registers users and issues bearer tokens.
type AuthUseCase struct {
	users  port.UserRepository
	hasher port.PasswordHasher
	tokens port.TokenIssuer

	// dummyHash is compared against when the email is unknown, so both
	// login failures cost one hash comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase creates a new usecase.
func NewAuthUseCase(users port.UserRepository, hasher port.PasswordHasher, tokens port.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates an account and returns it with a fresh token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*port.AuthResult, error) {
	email, password = strings.TrimSpace(email), strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, port.NewValidationError("Email and password are required")
	}

	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, port.NewConflictError("Email already registered")
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: hash}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.issue(*user)
}

// Login checks credentials and returns the user with a fresh token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	email, password = strings.TrimSpace(email), strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, port.NewValidationError("Email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		u.hasher.Compare(u.unknownUserHash(), password)
		return nil, port.NewUnauthenticatedError(invalidCredentials)
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		return nil, port.NewUnauthenticatedError(invalidCredentials)
	}
	return u.issue(*user)
}

// Authenticate verifies a bearer token.
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (port.TokenClaims, error) {
	if token == "" {
		return port.TokenClaims{}, port.NewUnauthenticatedError("Please authenticate")
	}
	return u.tokens.Verify(token)
}

func (u *AuthUseCase) unknownUserHash() string {
	u.dummyOnce.Do(func() {
		// A failed hash leaves an empty string, which Compare still rejects.
		u.dummyHash, _ = u.hasher.Hash("unknown-user-placeholder")
	})
	return u.dummyHash
}

func (u *AuthUseCase) issue(user domain.User) (*port.AuthResult, error) {
	token, err := u.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &port.AuthResult{User: user, Token: token}, nil
}
