// Package api provides the HTTP API for the application
package api

import (
	"octoview/internal/platform/config"
	"octoview/internal/platform/logger"
	phttp "octoview/internal/platform/net/http"
	"octoview/internal/platform/store"

	"octoview/internal/modkit"
	"octoview/internal/modkit/httpkit"
	"octoview/internal/modkit/module"
	"octoview/internal/modkit/swaggerkit"

	metamod "octoview/internal/services/api/meta/module"
	rankingmod "octoview/internal/services/api/ranking/module"
	usersmod "octoview/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the ranking module first and extract its Tracker port
	ranking := rankingmod.New(deps)
	tracker := module.MustPortsOf[rankingmod.Ports](ranking).Tracker

	// Inject that Tracker into the users module so summaries feed the
	// global language ranking
	users := usersmod.New(
		deps,
		usersmod.FromConfig(deps.Cfg),
		modkit.WithPorts(usersmod.InPorts{Tracker: tracker}),
	)

	mods := []module.Module{
		metamod.New(deps),
		ranking, // include ranking so its ports are registered
		users,   // API module that depends on the ranking Tracker
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
