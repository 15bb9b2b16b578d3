// Package auth mints the bearer tokens carried by sessions.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// ErrInvalidToken is returned when a token cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims of a session token: the standard subject, ID and
// issue time plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// TokenIssuer mints session tokens for accounts.
type TokenIssuer interface {
	Issue(account models.Account) (string, error)
}

// JWTIssuer signs HS256 tokens. Tokens carry no expiry: a session lives until
// it is revoked.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewJWTIssuer(secret []byte) *JWTIssuer {
	return &JWTIssuer{secret: secret, now: time.Now}
}

func (i *JWTIssuer) Issue(account models.Account) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
			Subject:  account.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: account.Role,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Inspect decodes the claims of token WITHOUT checking its signature.
// The result is for display only and must not be trusted.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
