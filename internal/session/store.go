package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ayursutra-server/internal/config"
	"ayursutra-server/internal/utils"
)

// account is a registered credential set, used only when mock auth is
// disabled. Accounts live in memory for the lifetime of the process;
// nothing here survives a restart and that is deliberate.
type account struct {
	email        string
	passwordHash string
	displayName  string
	role         Role
}

// Store is the single source of truth for "who is logged in and as
// what role". All state is volatile and guarded by a single mutex.
// There is no sweep: a session whose JWT has expired stops resolving
// (the token no longer validates) but its map entry stays until logout
// or process exit.
type Store struct {
	cfg *config.Config

	mu       sync.RWMutex
	sessions map[string]*Identity // session token -> identity
	accounts map[string]*account  // email -> account (non-mock mode)
}

// NewStore creates an empty session store.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		cfg:      cfg,
		sessions: make(map[string]*Identity),
		accounts: make(map[string]*account),
	}
}

// Login authenticates a user and opens a fresh session, returning the
// new identity and its session token.
//
// In mock-auth mode the check always succeeds after the simulated
// latency and an identity is synthesized from the email: this is the
// demo behavior of the product, kept behind the MockAuth toggle rather
// than silently fixed. With MockAuth off, the credentials must match a
// registered account or ErrAuthFailure is returned and no session
// state changes.
func (s *Store) Login(email, password string, role Role) (*Identity, string, error) {
	time.Sleep(s.cfg.LoginDelay)

	if !s.cfg.MockAuth {
		s.mu.RLock()
		acct, ok := s.accounts[email]
		s.mu.RUnlock()
		if !ok {
			return nil, "", ErrAuthFailure
		}
		if bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)) != nil {
			return nil, "", ErrAuthFailure
		}
		return s.open(email, acct.displayName, acct.role)
	}

	// Demo mode: display name is the email local-part.
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return s.open(email, name, role)
}

// Register creates a session for a new user, using the supplied display
// name instead of deriving one from the email. With MockAuth off the
// account is also recorded so later logins can be checked; registering
// an already-taken email fails without touching existing state.
func (s *Store) Register(email, password, name string, role Role) (*Identity, string, error) {
	time.Sleep(s.cfg.LoginDelay)

	if !s.cfg.MockAuth {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		s.mu.Lock()
		if _, exists := s.accounts[email]; exists {
			s.mu.Unlock()
			return nil, "", ErrAuthFailure
		}
		s.accounts[email] = &account{
			email:        email,
			passwordHash: string(hash),
			displayName:  name,
			role:         role,
		}
		s.mu.Unlock()
	}

	return s.open(email, name, role)
}

// open replaces nothing and merges nothing: a login always produces a
// whole new session, so there is no partial-update hazard. The token
// is a signed JWT carrying the session id; the session itself lives in
// memory so logout can revoke it server-side.
func (s *Store) open(email, name string, role Role) (*Identity, string, error) {
	ident := &Identity{
		ID:          uuid.New().String(),
		Email:       email,
		DisplayName: name,
		Role:        role,
		CreatedAt:   time.Now(),
	}

	sessionID := uuid.New().String()
	token, err := utils.GenerateSessionToken(sessionID, ident.ID, string(role), s.cfg.JWTSecret, s.cfg.SessionExpirationMinutes)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.sessions[sessionID] = ident
	s.mu.Unlock()

	return ident, token, nil
}

// Logout clears the session for the given token. It is idempotent:
// logging out an already-cleared or unknown session is a no-op.
func (s *Store) Logout(token string) {
	claims, err := utils.ValidateSessionToken(token, s.cfg.JWTSecret)
	if err != nil {
		return
	}
	s.mu.Lock()
	delete(s.sessions, claims.SessionID)
	s.mu.Unlock()
}

// CurrentIdentity returns the identity for a session token, or nil if
// the token is invalid or the session has been logged out. Query only,
// no side effects.
func (s *Store) CurrentIdentity(token string) *Identity {
	claims, err := utils.ValidateSessionToken(token, s.cfg.JWTSecret)
	if err != nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[claims.SessionID]
}
