package security

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const issuer = "campaign-dashboard"

// claims is the JWT payload. The subject holds the user id.
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer implements port.TokenIssuer with HS256-signed JWTs.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer returns an issuer signing with secret. Tokens expire after ttl.
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for user.
func (i *JWTIssuer) Issue(user domain.User) (string, error) {
	now := i.now()
	c := claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// Verify checks the signature, algorithm, issuer and expiry of token. Every
// failure is reported with the same generic message.
func (i *JWTIssuer) Verify(token string) (port.TokenClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || c.Subject == "" {
		return port.TokenClaims{}, port.NewUnauthenticatedError("Please authenticate")
	}
	return port.TokenClaims{UserID: c.Subject, Email: c.Email}, nil
}
