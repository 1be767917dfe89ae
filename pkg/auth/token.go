package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs and verifies API tokens with a shared HMAC-SHA256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

type claims struct {
	jwt.RegisteredClaims
	UserId string `json:"uid"`
}

// Issue returns a signed token carrying userId, valid for the issuer's ttl.
func (i *Issuer) Issue(userId string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserId: userId,
	})
	return token.SignedString(i.secret)
}

// Verify parses a signed token and returns the userId it carries.
//
// Tokens signed with any method other than HS256, expired tokens and
// tokens without uid are all rejected.
func (i *Issuer) Verify(signed string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		signed, &claims{},
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.UserId == "" {
		return "", fmt.Errorf("token carries no user")
	}
	return c.UserId, nil
}
