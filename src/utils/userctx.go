package utils

import "context"

const userIDKey = contextKey("userID")

// WithUserID stores the resolved user identity in the request context.
// Services never read it back implicitly; handlers extract it once and
// pass it down as an explicit argument.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the resolved user identity, or false when the
// request carries no identity.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}
