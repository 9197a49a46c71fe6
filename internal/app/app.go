// Package app implements the application layer for pinpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.trai.ch/pinpack/internal/engine/walker"
	"go.trai.ch/zerr"
)

// Toolchain is the set of external tools configured for one build.
type Toolchain struct {
	// Sources reads the dependencies declared by a source tree.
	Sources ports.DependencyExtractor
	// Packages reads the dependencies recorded in a built artifact.
	Packages   ports.DependencyExtractor
	Downloader ports.Downloader
	// Builder produces artifacts of the requested target.
	Builder ports.PackageBuilder
}

// ToolchainFactory configures the tools for the given settings and target.
type ToolchainFactory func(settings domain.Settings, translator *naming.Translator, target domain.Target) Toolchain

// ArtifactFiles finds and removes artifacts in an output directory.
type ArtifactFiles interface {
	walker.ArtifactFinder
	RemoveMatching(dir string, patterns ...string) ([]string, error)
}

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	pinLoader      ports.PinLoader
	tools          ToolchainFactory
	files          ArtifactFiles
	ledger         ports.ArtifactLedger
	telemetry      ports.Telemetry
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	pinLoader ports.PinLoader,
	tools ToolchainFactory,
	files ArtifactFiles,
	ledger ports.ArtifactLedger,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		pinLoader:      pinLoader,
		tools:          tools,
		files:          files,
		ledger:         ledger,
		telemetry:      telemetry,
		logger:         log,
	}
}

// logSettings is implemented by loggers whose output can be reconfigured.
type logSettings interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// ConfigureLogging switches the logger to JSON output and debug level.
func (a *App) ConfigureLogging(json, verbose bool) {
	if l, ok := a.logger.(logSettings); ok {
		l.SetJSON(json)
		l.SetVerbose(verbose)
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ProjectDir holds the setup.py or pyproject.toml of the package to build.
	ProjectDir   string
	VersionsFile string
	// ConfigFile is the settings file; empty means pinpack.yaml in ProjectDir.
	ConfigFile string
	Version    string
	Iteration  string
	// PinVersions writes requirements.txt and makes fpm obey it.
	PinVersions bool
	// Target overrides the settings target when non-empty.
	Target    string
	Filter    domain.Filter
	OutputDir string
	DeleteOld bool
	SkipSeen  bool
	MaxRounds int
	// ExtraArgs are passed through to the packaging tool for the top-level package.
	ExtraArgs []string
}

// BuildReport summarizes a finished build.
type BuildReport struct {
	// Artifact is the path of the top-level package.
	Artifact string
	// Dependencies holds every dependency packaged during traversal.
	Dependencies domain.ResolvedSet
}

// Build packages the project and every dependency reachable from it.
// Dependency failures are logged and pruned; only a failure of the
// top-level package fails the build.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) (*BuildReport, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	// 1. Settings and pins
	settings, err := a.settingsLoader.Load(settingsPath(opts.ConfigFile, projectDir))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	target := settings.Target
	if opts.Target != "" {
		if target, err = domain.ParseTarget(opts.Target); err != nil {
			return nil, err
		}
	}

	pins, err := a.pinLoader.Load(versionsPath(opts.VersionsFile))
	if err != nil {
		return nil, err
	}

	translator := naming.New(settings.NameExceptions...)
	tools := a.tools(settings, translator, target)

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if target == domain.TargetWheel {
		outputDir = filepath.Join(outputDir, domain.WheelDirName)
	}

	// 2. Old packages
	if opts.DeleteOld {
		removed, err := a.files.RemoveMatching(outputDir, "*"+target.Extension())
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrCleanFailed, err), "failed to delete old packages")
		}
		a.logger.Info(fmt.Sprintf("deleted %d old packages", len(removed)))
	}

	// 3. Direct dependencies
	names, err := tools.Sources.Extract(ctx, projectDir)
	if err != nil {
		return nil, err
	}
	direct := pins.Lookup(names)
	a.logger.Info(fmt.Sprintf("found %d direct dependencies", len(direct)))

	// 4. Traversal
	layers := walker.NewLayerBuilder(walker.Deps{
		Downloader: tools.Downloader,
		Builder:    tools.Builder,
		Sources:    tools.Sources,
		Extractor:  tools.Packages,
		Ledger:     a.ledger,
		Finder:     a.files,
		Telemetry:  a.telemetry,
		Logger:     a.logger,
	}, walker.Config{
		Pins:       pins,
		Translator: translator,
		Filter:     opts.Filter,
		Target:     target,
		OutputDir:  outputDir,
	})

	walkOpts := []walker.Option{walker.WithMaxRounds(opts.MaxRounds)}
	if opts.SkipSeen {
		walkOpts = append(walkOpts, walker.WithSkipSeen())
	}

	resolved, err := walker.New(layers, walkOpts...).Traverse(ctx, direct)
	if err != nil {
		return nil, zerr.Wrap(err, "dependency traversal failed")
	}

	// 5. Top-level package
	extraArgs := opts.ExtraArgs
	noPythonDeps := true
	if opts.PinVersions {
		if err := writeRequirements(projectDir, resolved); err != nil {
			return nil, err
		}
		extraArgs = append(append([]string{}, extraArgs...), domain.ObeyRequirementsFlag)
		noPythonDeps = false
	} else if target.IsNative() {
		extraArgs = translator.ExtendExtraArgs(extraArgs, direct)
	}

	absProject, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project directory")
	}

	vctx, vertex := a.telemetry.Record(ctx, filepath.Base(absProject))
	artifact, err := tools.Builder.Build(vctx, domain.BuildRequest{
		Name:                 filepath.Base(absProject),
		Path:                 absProject,
		Version:              opts.Version,
		Iteration:            opts.Iteration,
		Target:               target,
		NoPythonDependencies: noPythonDeps && target.IsNative(),
		ExtraArgs:            extraArgs,
		OutputDir:            outputDir,
	})
	vertex.Complete(err)
	if err != nil {
		wrapped := zerr.Wrap(errors.Join(domain.ErrTopLevelBuildFailed, err), "failed to package project")
		return nil, zerr.With(wrapped, "project", absProject)
	}

	a.logger.Info("built " + artifact)
	return &BuildReport{Artifact: artifact, Dependencies: resolved}, nil
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ProjectDir   string
	VersionsFile string
	ConfigFile   string
}

// Resolve returns the direct dependencies of the project with their pins.
// Nothing is downloaded or built.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (domain.Frontier, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	settings, err := a.settingsLoader.Load(settingsPath(opts.ConfigFile, projectDir))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	pins, err := a.pinLoader.Load(versionsPath(opts.VersionsFile))
	if err != nil {
		return nil, err
	}

	tools := a.tools(settings, naming.New(settings.NameExceptions...), settings.Target)
	names, err := tools.Sources.Extract(ctx, projectDir)
	if err != nil {
		return nil, err
	}
	return pins.Lookup(names), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Ledger  bool
	Scripts bool
}

// Clean removes the state pinpack keeps below .pinpack.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Ledger {
		remove(domain.DefaultArtifactsPath(), "artifact ledger")
	}

	if options.Scripts {
		remove(domain.DefaultScriptsPath(), "maintainer scripts")
	}

	return errs
}

func settingsPath(configFile, projectDir string) string {
	if configFile != "" {
		return configFile
	}
	return filepath.Join(projectDir, domain.SettingsFileName)
}

func versionsPath(versionsFile string) string {
	if versionsFile != "" {
		return versionsFile
	}
	return domain.DefaultVersionsFile
}

// writeRequirements writes the resolved set as requirements.txt in dir.
func writeRequirements(dir string, resolved domain.ResolvedSet) error {
	path := filepath.Join(dir, domain.RequirementsFileName)
	content := strings.Join(resolved.Requirements(), "\n")
	if content != "" {
		content += "\n"
	}
	//nolint:gosec // requirements.txt is meant to be world readable
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrRequirementsWriteFailed, err), "failed to write requirements"), "path", path)
	}
	return nil
}
