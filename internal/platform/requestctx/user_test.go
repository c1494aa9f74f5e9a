package requestctx

import (
	"context"
	"testing"
)

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "nil", ctx: nil, want: ""},
		{name: "anonymous", ctx: context.Background(), want: ""},
		{name: "signed in", ctx: WithUserID(context.Background(), "u1"), want: "u1"},
		{name: "nil parent", ctx: WithUserID(nil, "u2"), want: "u2"},
		{name: "innermost wins", ctx: WithUserID(WithUserID(context.Background(), "u1"), "u3"), want: "u3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := UserIDFromContext(tc.ctx); got != tc.want {
				t.Fatalf("UserIDFromContext() = %q, want %q", got, tc.want)
			}
		})
	}
}
