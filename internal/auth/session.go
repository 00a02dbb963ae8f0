// Package auth verifies console access tokens and turns their claims into
// an explicit session value. Handlers receive the session through request
// context and never touch token parsing themselves.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkellner85/poi-console-services/api/internal/config"
)

// ErrInvalidToken is returned when no configured issuer accepts the token.
var ErrInvalidToken = errors.New("access token is invalid")

// Session is the verified principal of an authenticated request.
type Session struct {
	Subject   string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenVerifier checks a raw bearer token and returns the session it carries.
type TokenVerifier interface {
	Verify(token string) (Session, error)
}

type jwtVerifier struct {
	configs  []config.JWTConfig
	audience string
}

// NewJWTVerifier builds a TokenVerifier that tries each issuer/secret pair in
// order. HS256 only; a 30 second leeway absorbs clock skew between the auth
// service and this API.
func NewJWTVerifier(configs []config.JWTConfig, audience string) (TokenVerifier, error) {
	if len(configs) == 0 {
		return nil, errors.New("no JWT issuers configured")
	}
	return &jwtVerifier{
		configs:  append([]config.JWTConfig(nil), configs...),
		audience: audience,
	}, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

func (v *jwtVerifier) Verify(tokenString string) (Session, error) {
	for _, cfg := range v.configs {
		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}
		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if v.audience != "" && !contains(claims.Audience, v.audience) {
			continue
		}

		session := Session{
			Subject: claims.Subject,
			Name:    claims.Name,
		}
		if claims.IssuedAt != nil {
			session.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
		}
		return session, nil
	}

	return Session{}, ErrInvalidToken
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
