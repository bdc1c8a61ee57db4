package interfaces

import "context"

// Session identifies an authenticated admin user as reported by the remote
// authentication subsystem. The site never stores credentials; it only
// checks whether a bearer token still maps to a live session.
type Session struct {
	UserID string
	Email  string
}

// SessionVerifier checks an access token against the backend's auth
// subsystem. Implementations must distinguish "no session" (nil session,
// nil error) from transport failures.
type SessionVerifier interface {
	Verify(ctx context.Context, accessToken string) (*Session, error)
}

// AuthProvider resolves the acting admin user for audit-style concerns.
type AuthProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}
