// Package requestctx carries the signed-in user through context, below the
// HTTP layer.
package requestctx

import "context"

type userIDKey struct{}

// WithUserID returns ctx carrying userID. A nil ctx starts from Background.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user ID stored by WithUserID, or "" for
// anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
