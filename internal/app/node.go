package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/fpm"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/pip"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/pkgmeta"            //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/source"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/adapters/versions"           //nolint:depguard // Wired in app layer
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ToolchainNodeID is the unique identifier for the toolchain factory Graft node.
	ToolchainNodeID graft.ID = "app.toolchain"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Toolchain Node
	graft.Register(graft.Node[ToolchainFactory]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			pkgmeta.NodeID,
			pip.ClientNodeID,
			pip.WheelNodeID,
			fpm.NodeID,
		},
		Run: runToolchainNode,
	})

	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			versions.NodeID,
			ToolchainNodeID,
			fs.ResolverNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runToolchainNode(ctx context.Context) (ToolchainFactory, error) {
	sources, err := graft.Dep[*source.Extractor](ctx)
	if err != nil {
		return nil, err
	}

	packages, err := graft.Dep[*pkgmeta.Extractor](ctx)
	if err != nil {
		return nil, err
	}

	client, err := graft.Dep[*pip.Client](ctx)
	if err != nil {
		return nil, err
	}

	wheels, err := graft.Dep[*pip.WheelBuilder](ctx)
	if err != nil {
		return nil, err
	}

	native, err := graft.Dep[*fpm.Builder](ctx)
	if err != nil {
		return nil, err
	}

	return func(settings domain.Settings, translator *naming.Translator, target domain.Target) Toolchain {
		var builder ports.PackageBuilder = native.Configure(settings, translator)
		if target == domain.TargetWheel {
			builder = wheels.WithPip(settings.Pip)
		}
		return Toolchain{
			Sources:    sources.WithPython(settings.Python),
			Packages:   packages.WithTranslator(translator),
			Downloader: client.WithPip(settings.Pip),
			Builder:    builder,
		}
	}, nil
}

func runAppNode(ctx context.Context) (*App, error) {
	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	pinLoader, err := graft.Dep[ports.PinLoader](ctx)
	if err != nil {
		return nil, err
	}

	tools, err := graft.Dep[ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*fs.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := graft.Dep[ports.ArtifactLedger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settingsLoader, pinLoader, tools, resolver, ledger, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
