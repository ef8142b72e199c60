package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ayursutra-server/internal/session"
)

func identity(role session.Role) *session.Identity {
	return &session.Identity{ID: "id-1", Role: role}
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	assert.Equal(t, RedirectLogin, Decide(nil))
	assert.Equal(t, RedirectLogin, Decide(nil, session.RoleDoctor))
}

func TestWrongRoleRedirectsHomeNeverLogin(t *testing.T) {
	roles := []session.Role{session.RoleDoctor, session.RolePatient, session.RoleTherapist}
	for _, have := range roles {
		for _, need := range roles {
			if have == need {
				continue
			}
			decision := Decide(identity(have), need)
			// Already authenticated, so the silent redirect goes home.
			assert.Equal(t, RedirectHome, decision, "have=%s need=%s", have, need)
		}
	}
}

func TestMatchingRoleAllows(t *testing.T) {
	assert.Equal(t, Allow, Decide(identity(session.RoleDoctor), session.RoleDoctor))
	assert.Equal(t, Allow, Decide(identity(session.RoleTherapist), session.RoleDoctor, session.RoleTherapist))
}

func TestEmptyRoleSetAllowsAnyAuthenticated(t *testing.T) {
	assert.Equal(t, Allow, Decide(identity(session.RolePatient)))
}
