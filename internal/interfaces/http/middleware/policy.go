package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/pkg/errors"
)

// Requirement is what a route demands of the request identity.
type Requirement int

const (
	// Public routes accept anonymous requests.
	Public Requirement = iota
	// Authenticated routes require any valid principal.
	Authenticated
	// AdminOnly routes require the admin role.
	AdminOnly
)

// Rule binds a method/path pattern to a requirement. An empty Method
// matches every method. Patterns are segment-wise: a `*` segment matches
// exactly one path segment, and a trailing `/**` matches any suffix
// (including the empty one).
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// PolicyTable is the ordered route authorization table. The first matching
// rule governs; requests matching no rule require authentication.
var PolicyTable = []Rule{
	// CORS preflights must pass untouched.
	{Method: http.MethodOptions, Pattern: "/**", Require: Public},

	{Pattern: "/api/auth/**", Require: Public},
	{Method: http.MethodPost, Pattern: "/api/admin/login", Require: Public},

	{Method: http.MethodGet, Pattern: "/api/dogs", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/dogs/adopt", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/dogs/buy", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/dogs/status/*", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/dogs/*", Require: Public},

	{Method: http.MethodPost, Pattern: "/api/surrender-dogs", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/surrender-dogs", Require: Public},
	{Pattern: "/api/surrender-dogs/my-requests", Require: Authenticated},
	{Method: http.MethodGet, Pattern: "/api/surrender-dogs/*", Require: Public},

	{Method: http.MethodPost, Pattern: "/api/reports", Require: Public},
	{Method: http.MethodGet, Pattern: "/api/reports", Require: Public},
	{Pattern: "/api/reports/my-reports", Require: Authenticated},

	{Method: http.MethodPost, Pattern: "/api/contact-messages", Require: Public},
	{Pattern: "/api/contact-messages/my-messages", Require: Authenticated},
	{Pattern: "/api/contact-messages/*", Require: Authenticated},

	{Pattern: "/api/applications/**", Require: Authenticated},
	{Pattern: "/api/users/**", Require: Authenticated},

	{Pattern: "/api/admin/**", Require: AdminOnly},

	{Pattern: "/health/**", Require: Public},
	{Method: http.MethodGet, Pattern: "/metrics", Require: Public},
	{Method: http.MethodGet, Pattern: "/uploads/**", Require: Public},
}

// Policy enforces the authorization table. Every denial is a 401 with the
// same body, whether the request was anonymous or merely under-privileged.
func Policy(table []Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		require := Authenticated
		for _, rule := range table {
			if rule.Method != "" && rule.Method != c.Request.Method {
				continue
			}
			if matchPattern(rule.Pattern, c.Request.URL.Path) {
				require = rule.Require
				break
			}
		}

		switch require {
		case Public:
			c.Next()
			return
		case Authenticated:
			if _, ok := CurrentPrincipal(c); ok {
				c.Next()
				return
			}
		case AdminOnly:
			if principal, ok := CurrentPrincipal(c); ok && principal.HasRole(models.RoleAdmin) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(errors.ErrUnauthorized.Status,
			gin.H{"error": errors.ErrUnauthorized.Message})
	}
}

// matchPattern compares a pattern to a concrete path, segment by segment.
func matchPattern(pattern, path string) bool {
	prefix, isPrefix := strings.CutSuffix(pattern, "/**")
	patSegs := splitPath(prefix)
	pathSegs := splitPath(path)

	if isPrefix {
		if len(pathSegs) < len(patSegs) {
			return false
		}
		pathSegs = pathSegs[:len(patSegs)]
	} else if len(patSegs) != len(pathSegs) {
		return false
	}

	for i, seg := range patSegs {
		if seg == "*" {
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
