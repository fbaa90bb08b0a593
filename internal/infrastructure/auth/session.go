package auth

import (
	"context"

	"github.com/google/uuid"
)

// Session is the identity attached to an authenticated request. It is
// passed explicitly through the request context rather than read from
// globals, so handlers and services state their dependency on it.
type Session struct {
	StaffID uuid.UUID
	Name    string
	Email   string
	Role    string
}

// IsAdmin reports whether the session belongs to an admin
func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

type sessionKey struct{}

// WithSession returns a context carrying the session
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext extracts the session from the context, if any
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*Session)
	return session, ok
}
