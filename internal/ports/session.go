package ports

import "context"

// SessionToken is the bearer credential of the caller, as presented to the
// service. Adapters forward it to the auth provider; the repository never
// inspects it.
type SessionToken struct {
	AccessToken string
}

type sessionTokenKey struct{}

// WithSessionToken attaches the caller's session token to ctx.
func WithSessionToken(ctx context.Context, token *SessionToken) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionTokenFromContext returns the session token, or nil when the caller is anonymous.
func SessionTokenFromContext(ctx context.Context) *SessionToken {
	if token, ok := ctx.Value(sessionTokenKey{}).(*SessionToken); ok && token != nil && token.AccessToken != "" {
		return token
	}

	return nil
}
