package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/booklibrary/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var ErrInvalidToken = errors.New("invalid session token")

// Claims is the signed payload carried by the session cookie. The session id is the jti.
type Claims struct {
	jwt.RegisteredClaims
}

// SessionID returns the opaque identifier the cart store is keyed by.
func (c *Claims) SessionID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

// Issuer mints and verifies session tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an issuer from the session config.
func NewIssuer(cfg config.SessionConfig) (*Issuer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, fmt.Errorf("session issuer is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Issuer{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// TTL is the lifetime of freshly minted tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Mint issues a token for a brand new session id.
func (i *Issuer) Mint() (token string, sessionID string, err error) {
	sessionID = NewSessionID()
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        sessionID,
		},
	}
	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(i.secret)
	if err != nil {
		return "", "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, sessionID, nil
}

// Parse validates the token string and returns its claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.ID) == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// NewSessionID produces a random opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}
