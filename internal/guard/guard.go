// Package guard decides whether a protected view is reachable for the
// current session. It is a pure function over (identity, allowed
// roles): it holds no state of its own and must be re-evaluated on
// every navigation, since the session can change between checks.
package guard

import (
	"ayursutra-server/internal/session"
)

// Decision is the outcome of a reachability check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login entry point.
	RedirectLogin
	// RedirectHome silently sends an authenticated user whose role is
	// not allowed back to the home view. Not an error page.
	RedirectHome
)

// Decide evaluates reachability of a view requiring any of
// allowedRoles. An empty allowedRoles set means any authenticated
// identity may enter.
func Decide(ident *session.Identity, allowedRoles ...session.Role) Decision {
	if ident == nil {
		return RedirectLogin
	}
	if len(allowedRoles) == 0 {
		return Allow
	}
	for _, role := range allowedRoles {
		if ident.Role == role {
			return Allow
		}
	}
	return RedirectHome
}
