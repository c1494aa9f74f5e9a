// Package webctx moves request-scoped identity from the HTTP layer into the
// context handed to module services.
package webctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/teamboost/gratitudewall/internal/platform/requestctx"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
)

// WithResolvedUserID returns the request context carrying the signed-in user
// ID. Anonymous requests keep their context unchanged.
func WithResolvedUserID(r *http.Request, resolve module.ResolveUserID) context.Context {
	if r == nil {
		return context.Background()
	}
	var userID string
	if resolve != nil {
		userID = strings.TrimSpace(resolve(r))
	}
	if userID == "" {
		return r.Context()
	}
	return requestctx.WithUserID(r.Context(), userID)
}
