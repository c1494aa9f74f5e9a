package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/sessioncookie"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// ComposeInput lists the module groups to mount and the dependencies they
// share.
type ComposeInput struct {
	Dependencies module.Dependencies
	// AuthRequired reports whether the request may reach protected modules.
	AuthRequired     func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// group is one set of modules sharing a mount rule.
type group struct {
	name      string
	protected bool
	modules   []module.Module
	wrap      func(http.Handler) http.Handler
}

// router mounts modules onto one mux and remembers which module owns each
// pattern.
type router struct {
	mux    *http.ServeMux
	deps   module.Dependencies
	owners map[string]string
}

// Compose mounts public modules anywhere outside the dashboard and protected
// modules under it, behind the sign-in gate and the same-origin check.
func Compose(input ComposeInput) (http.Handler, error) {
	signedIn := input.AuthRequired
	if signedIn == nil {
		signedIn = func(*http.Request) bool { return false }
	}
	policy := input.Dependencies.RequestSchemePolicy()

	r := router{mux: http.NewServeMux(), deps: input.Dependencies, owners: make(map[string]string)}
	groups := []group{
		{name: "public", modules: input.PublicModules},
		{
			name:      "protected",
			protected: true,
			modules:   input.ProtectedModules,
			wrap: func(next http.Handler) http.Handler {
				return requireSignIn(signedIn, sameOriginMutations(policy, next))
			},
		},
	}
	for _, g := range groups {
		for _, m := range g.modules {
			if m == nil {
				return nil, fmt.Errorf("%s module is nil", g.name)
			}
			if err := r.mount(g, m); err != nil {
				return nil, err
			}
		}
	}
	return r.mux, nil
}

func (r router) mount(g group, m module.Module) error {
	mount, err := m.Mount(r.deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", m.ID(), err)
	}
	if err := checkPrefix(mount.Prefix); err != nil {
		return fmt.Errorf("module %q has invalid prefix %q: %w", m.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", m.ID())
	}
	underDashboard := strings.HasPrefix(mount.Prefix, routepath.DashboardPrefix)
	switch {
	case g.protected && !underDashboard:
		return fmt.Errorf("module %q must mount under %s, got %q", m.ID(), routepath.DashboardPrefix, mount.Prefix)
	case !g.protected && underDashboard:
		return fmt.Errorf("module %q has protected prefix %q in public group", m.ID(), mount.Prefix)
	}

	handler := mount.Handler
	if g.wrap != nil {
		handler = g.wrap(handler)
	}
	patterns := []string{mount.Prefix}
	// "/pricing" and "/dashboard" reach the module without a trailing-slash
	// redirect hop.
	if mount.Prefix != routepath.Root {
		patterns = append(patterns, strings.TrimSuffix(mount.Prefix, "/"))
	}
	for _, pattern := range patterns {
		if owner, taken := r.owners[pattern]; taken {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", m.ID(), pattern, owner)
		}
		r.owners[pattern] = m.ID()
		r.mux.Handle(pattern, handler)
	}
	return nil
}

func checkPrefix(prefix string) error {
	switch {
	case prefix == "":
		return errors.New("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return errors.New("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(prefix, "/"):
		return errors.New("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return errors.New("prefix must end with /")
	}
	return nil
}

// requireSignIn sends anonymous viewers to the login page, remembering the
// page they asked for when it can be revisited with a GET.
func requireSignIn(signedIn func(*http.Request) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if signedIn(r) {
			next.ServeHTTP(w, r)
			return
		}
		var target string
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			target = r.URL.RequestURI()
		}
		httpx.WriteRedirect(w, r, routepath.LoginWithNext(target))
	})
}

// sameOriginMutations rejects cookie-authenticated writes that carry no
// same-origin proof.
func sameOriginMutations(policy requestmeta.SchemePolicy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMutation(r.Method) && hasSessionCookie(r) && !policy.HasSameOriginProof(r) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
