// Package crypto implements the token codec and password hashing for the
// Home4Paws backend.
package crypto

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// Claims is the verified content of a token: who it was issued to, with
// which roles, and its validity window.
type Claims struct {
	Subject   string
	Roles     []models.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies signed, expiring identity tokens. Issued
// tokens are self-contained: verification needs no server-side state beyond
// the process-wide secret, and there is no revocation before expiry.
type TokenCodec interface {
	Issue(subject string, roles []models.Role) (string, error)
	Verify(token string) (*Claims, error)
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type jwtCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    logger.Logger
}

// NewTokenCodec creates an HS256 codec with the given process-wide secret
// and fixed token lifetime.
func NewTokenCodec(secret string, ttl time.Duration, log logger.Logger) TokenCodec {
	return &jwtCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// NewTokenCodecWithClock creates a codec with an injected clock. Used by
// tests to cross the expiry boundary without sleeping.
func NewTokenCodecWithClock(secret string, ttl time.Duration, now func() time.Time, log logger.Logger) TokenCodec {
	return &jwtCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		log:    log,
	}
}

// Issue signs a new token for the subject with the given role set. The
// claim window is [now, now+ttl].
func (c *jwtCodec) Issue(subject string, roles []models.Role) (string, error) {
	now := c.now()
	claims := tokenClaims{
		Roles: models.RoleNames(roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		c.log.Error(context.Background(), "Failed to sign token", err)
		return "", errors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It distinguishes three
// failure modes: malformed input, bad signature and expiry. Verification is
// a pure function of the token, the secret and the current time.
func (c *jwtCodec) Verify(tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrTokenMalformed
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.ErrTokenExpired.WithError(err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.ErrTokenSignatureInvalid.WithError(err)
		default:
			return nil, errors.ErrTokenMalformed.WithError(err)
		}
	}

	if !token.Valid {
		return nil, errors.ErrTokenMalformed
	}

	roles, rejected := models.ParseRoles(claims.Roles)
	if len(rejected) > 0 {
		c.log.Warn(context.Background(), "Dropping unknown roles from token claims",
			logger.Fields{"subject": claims.Subject, "rejected": rejected})
	}

	out := &Claims{
		Subject: claims.Subject,
		Roles:   roles,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
