package reqctx

import "context"

// SessionInfo is the resolved auth session for the current request.
// PatientID is empty for admin sessions.
type SessionInfo struct {
	Token     string
	Role      string
	PatientID string
}

// WithSession stores the resolved session in the context.
func WithSession(ctx context.Context, s *SessionInfo) context.Context {
	return context.WithValue(ctx, keySession, s)
}

// SessionFromContext retrieves the session from the context.
// Returns nil, false if the request is not authenticated.
func SessionFromContext(ctx context.Context) (*SessionInfo, bool) {
	v := ctx.Value(keySession)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*SessionInfo)
	return s, ok
}
