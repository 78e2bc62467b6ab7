// Package module wires users into the API using modkit
package module

import (
	"net/http"

	modkit "octoview/internal/modkit"
	"octoview/internal/modkit/httpkit"
	str "octoview/internal/platform/strings"

	gh "octoview/internal/adapters/upstream/github"
	"octoview/internal/services/api/users/domain"
	usershttp "octoview/internal/services/api/users/http"
	usersrepo "octoview/internal/services/api/users/repo"
	userssvc "octoview/internal/services/api/users/service"
)

// InPorts are cross-module dependencies injected via modkit.WithPorts
type InPorts struct {
	// Tracker records language occurrences; nil skips recording
	Tracker domain.TrackerPort
}

// Module implements the users module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc userssvc.Service
}

// New constructs the users module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)...)

	var tracker domain.TrackerPort
	if in, ok := b.Ports.(InPorts); ok {
		tracker = in.Tracker
	}

	client := gh.NewClient(gh.Options{
		BaseURL:    o.BaseURL,
		UserAgent:  o.UserAgent,
		Timeout:    o.Timeout,
		TokensCSV:  o.TokensCSV,
		MaxRetries: o.MaxRetries,
		RetryBase:  o.RetryBase,
		RPS:        o.RPS,
		Burst:      o.Burst,
	})

	repo := usersrepo.NewPG()
	svc := userssvc.New(deps.PG, repo, client, tracker)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptUsersPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		usershttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
