// Package module wires ranking into the API using modkit
package module

import (
	"net/http"

	modkit "octoview/internal/modkit"
	"octoview/internal/modkit/httpkit"
	str "octoview/internal/platform/strings"

	rankinghttp "octoview/internal/services/api/ranking/http"
	rankingrepo "octoview/internal/services/api/ranking/repo"
	rankingsvc "octoview/internal/services/api/ranking/service"
)

// Module implements the ranking module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc rankingsvc.Service
}

// New constructs the ranking module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ranking"), modkit.WithPrefix("/ranking")}, opts...)...)

	repo := rankingrepo.NewCH(deps.CH)
	svc := rankingsvc.New(repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Tracker: svc, Ranking: adaptRankingPort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rankinghttp.Register(r, m.svc)
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
