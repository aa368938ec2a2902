package service

import (
	"sync"

	"workerguard-console/internal/domain"

	"go.uber.org/zap"
)

// SessionManager holds the authenticated session and derives the permission
// flags that gate every other component. It implements api.HeaderSource so
// the backend client picks the bearer header up automatically.
type SessionManager struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	session *domain.Session
}

func NewSessionManager(logger *zap.Logger) *SessionManager {
	return &SessionManager{logger: logger}
}

// Establish installs the session returned by a successful login. The session
// is immutable from here on; there is no refresh path.
func (m *SessionManager) Establish(session *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	m.logger.Info("session established",
		zap.String("username", session.Username),
		zap.String("company", session.Company),
		zap.String("role", session.Role.String()),
	)
}

// Current returns a copy of the active session, if any.
func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return domain.Session{}, false
	}
	return *m.session, true
}

// Logout unconditionally discards the session. The console is back to an
// unauthenticated state; there is no soft transition beyond this.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.logger.Info("session discarded", zap.String("username", m.session.Username))
	}
	m.session = nil
}

// AuthHeaders returns the bearer header, or an empty set when no credential
// is held. Requests without it go out headerless rather than failing.
func (m *SessionManager) AuthHeaders() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil || m.session.AccessToken == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + m.session.AccessToken}
}

// IsAdmin reports whether the session unlocks the SMS and Settings tabs and
// unrestricted worker mutation. Unknown roles fail closed.
func (m *SessionManager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil && m.session.Role == domain.RoleAdmin
}

// IsRestricted reports whether worker-list mutation and roster upload are
// blocked: Staff operating in REGULAR mode. Missing sessions and unknown
// roles are treated as restricted in every mode.
func (m *SessionManager) IsRestricted(mode domain.Mode) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return true
	}
	switch m.session.Role {
	case domain.RoleAdmin:
		return false
	case domain.RoleStaff:
		return mode == domain.ModeRegular
	default:
		return true
	}
}
