package common

import (
	"context"

	"github.com/dkellner85/poi-console-services/api/internal/auth"
)

type contextKey string

const sessionContextKey contextKey = "authSession"

// ContextWithSession stores the verified editor session into context.
func ContextWithSession(ctx context.Context, session auth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext extracts the editor session from context.
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(auth.Session)
	return session, ok
}
