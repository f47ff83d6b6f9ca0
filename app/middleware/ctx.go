package middleware

import (
	"context"

	"gemini-portal/app/session"
)

type ctxKey int

const sessionKey ctxKey = 1

// GetSession returns the claims stored by the auth guards, or nil on
// unauthenticated requests.
func GetSession(ctx context.Context) *session.Claims {
	if v := ctx.Value(sessionKey); v != nil {
		if c, ok := v.(*session.Claims); ok {
			return c
		}
	}
	return nil
}
