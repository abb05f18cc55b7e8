package security

import "context"

type contextKey int

const (
	claimsKey contextKey = iota
	tokenKey
)

// WithClaims stores the verified claims of the current request.
func WithClaims(ctx context.Context, claims *UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext extracts the verified claims placed by the auth
// middleware. The second return is false on unauthenticated contexts.
func ClaimsFromContext(ctx context.Context) (*UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*UserClaims)
	return claims, ok
}

// WithToken stores the raw bearer token so the upstream client can forward it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw bearer token of the current request, or an
// empty string when absent.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
