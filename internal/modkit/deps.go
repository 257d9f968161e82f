// Package modkit provides module wiring and core deps
package modkit

import (
	"waypost/internal/modkit/repokit"
	"waypost/internal/modkit/schemakit"
	"waypost/internal/platform/config"
	"waypost/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner

	// Schemas resolves route schema fragments for the module's routes
	Schemas *schemakit.Resolver

	// Manifest collects resolved schemas across every mounted module
	Manifest *schemakit.Manifest
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
