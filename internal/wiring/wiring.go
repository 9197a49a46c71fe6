// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinpack/internal/adapters/cas"
	_ "go.trai.ch/pinpack/internal/adapters/config"
	_ "go.trai.ch/pinpack/internal/adapters/fpm"
	_ "go.trai.ch/pinpack/internal/adapters/fs"
	_ "go.trai.ch/pinpack/internal/adapters/logger"
	_ "go.trai.ch/pinpack/internal/adapters/pip"
	_ "go.trai.ch/pinpack/internal/adapters/pkgmeta"
	_ "go.trai.ch/pinpack/internal/adapters/shell"
	_ "go.trai.ch/pinpack/internal/adapters/source"
	_ "go.trai.ch/pinpack/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/pinpack/internal/adapters/versions"
	// Register app nodes.
	_ "go.trai.ch/pinpack/internal/app"
)
