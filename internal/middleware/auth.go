package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/guard"
	"ayursutra-server/internal/session"
	"ayursutra-server/internal/utils"
)

const (
	identityKey = "identity"
	tokenKey    = "sessionToken"

	loginPath = "/login"
	homePath  = "/"
)

// Auth resolves the bearer token into a live identity on every
// request. The check is never cached: a logout while a protected view
// is mounted redirects on the very next navigation. Visitors without a
// live session are sent to the login entry point.
func Auth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		ident := store.CurrentIdentity(token)

		if guard.Decide(ident) == guard.RedirectLogin {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireRoles gates a view to the given roles. It must be used after
// Auth. An authenticated identity with the wrong role is silently sent
// back to the home view, never to login and never to an error page.
func RequireRoles(allowedRoles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromContext(c)
		if !ok {
			utils.InternalServerError(c, "Identity not found in context. Auth middleware might be missing.")
			c.Abort()
			return
		}

		switch guard.Decide(ident, allowedRoles...) {
		case guard.Allow:
			c.Next()
		case guard.RedirectLogin:
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
		case guard.RedirectHome:
			c.Redirect(http.StatusSeeOther, homePath)
			c.Abort()
		}
	}
}

// IdentityFromContext returns the identity set by Auth.
func IdentityFromContext(c *gin.Context) (*session.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	ident, ok := v.(*session.Identity)
	return ident, ok && ident != nil
}

// TokenFromContext returns the raw session token set by Auth.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(tokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
