package auth

import "context"

type ctxKey struct{}

// WithClaims attaches the authenticated caller to ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok && c != nil
}

// UserIDFrom returns the caller's id, or nil for anonymous requests.
func UserIDFrom(ctx context.Context) *uint {
	c, ok := ClaimsFrom(ctx)
	if !ok {
		return nil
	}
	id := c.UserID
	return &id
}
