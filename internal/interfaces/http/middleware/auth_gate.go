// Package middleware implements the HTTP middleware chain: request
// identification, access logging, the authentication gate, the route
// authorization policy and login rate limiting.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/domain/repository"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/constants"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

const principalKey = "home4paws.principal"

// AuthGate resolves the request identity from the Authorization header. It
// is deliberately tolerant: a missing, malformed, expired or badly signed
// token degrades the request to anonymous rather than rejecting it, and the
// authorization policy downstream decides whether anonymous is enough. The
// only hard failure here is a credential-store outage, which is a 500, not
// an auth error.
func AuthGate(codec crypto.TokenCodec, users repository.UserRepository, log logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("auth_gate")

	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			c.Next()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			log.Debug(c.Request.Context(), "token rejected, continuing as anonymous",
				logger.Fields{"reason": err.Error()})
			c.Next()
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				log.Debug(c.Request.Context(), "token subject no longer exists",
					logger.Fields{"subject": claims.Subject})
				c.Next()
				return
			}
			log.Error(c.Request.Context(), "identity lookup failed", err)
			c.AbortWithStatusJSON(errors.ErrDatabaseOperation.Status,
				gin.H{"error": "internal server error"})
			return
		}
		if !user.Enabled {
			log.Debug(c.Request.Context(), "token subject is disabled",
				logger.Fields{"subject": claims.Subject})
			c.Next()
			return
		}

		principal := models.Principal{Username: claims.Subject, Roles: claims.Roles}
		c.Set(principalKey, principal)

		// Make the username visible to the context-aware logger.
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyUsername, claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// CurrentPrincipal returns the authenticated identity attached to the
// request, if any.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.AbortWithStatusJSON(errors.ErrUnauthorized.Status,
				gin.H{"error": errors.ErrUnauthorized.Message})
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose principal lacks the role. Missing-role
// and anonymous are both 401; role membership is never distinguished from
// authentication in responses.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok || !principal.HasRole(role) {
			c.AbortWithStatusJSON(errors.ErrUnauthorized.Status,
				gin.H{"error": errors.ErrUnauthorized.Message})
			return
		}
		c.Next()
	}
}
