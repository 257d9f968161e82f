// Package api provides the HTTP API for the application
package api

import (
	"waypost/internal/platform/config"
	"waypost/internal/platform/logger"
	phttp "waypost/internal/platform/net/http"
	"waypost/internal/platform/store"

	"waypost/internal/modkit"
	"waypost/internal/modkit/dockit"
	"waypost/internal/modkit/httpkit"
	"waypost/internal/modkit/module"
	"waypost/internal/modkit/schemakit"

	metamod "waypost/internal/services/api/meta/module"
	notesmod "waypost/internal/services/api/notes/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableDocs     bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	manifest := schemakit.NewManifest()

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:      opt.Config,
		PG:       opt.Store.PG,
		Manifest: manifest,
	}

	mods := []module.Module{
		metamod.New(deps),
		notesmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// docs read the manifest the modules just filled
	dockit.Mount(r, manifest, "waypost", "v1", opt.EnableDocs)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
