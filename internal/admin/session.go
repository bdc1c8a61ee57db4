package admin

import (
	"context"

	"github.com/servetdekorasyon/website/pkg/interfaces"
)

type sessionContextKey struct{}

func withSession(ctx context.Context, session *interfaces.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the admin session attached by an authorized
// operation, if any.
func SessionFromContext(ctx context.Context) (*interfaces.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*interfaces.Session)
	return session, ok && session != nil
}

// ContextAuthProvider resolves the acting admin from the request context.
type ContextAuthProvider struct{}

// CurrentUserID implements interfaces.AuthProvider.
func (ContextAuthProvider) CurrentUserID(ctx context.Context) (string, error) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return session.UserID, nil
}
