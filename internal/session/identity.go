package session

import (
	"errors"
	"time"
)

// Role enum
type Role string

const (
	RoleDoctor    Role = "doctor"
	RolePatient   Role = "patient"
	RoleTherapist Role = "therapist"
)

// ParseRole converts a request string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDoctor, RolePatient, RoleTherapist:
		return Role(s), nil
	}
	return "", errors.New("unknown role: " + s)
}

// Identity is the authenticated user's role-tagged profile for the
// current session. It exists if and only if the session is live and is
// owned exclusively by the Store.
type Identity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ErrAuthFailure is returned when a login or registration is rejected.
// It is never produced in mock-auth mode, but callers must be prepared
// for it: on failure the prior session state is left untouched.
var ErrAuthFailure = errors.New("invalid email or password")

// ErrNoSession is returned when a token does not map to a live session.
var ErrNoSession = errors.New("no active session")
