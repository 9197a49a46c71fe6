package fpm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/adapters/fpm"
	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports/mocks"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.uber.org/mock/gomock"
)

func TestCommand(t *testing.T) {
	rpmSettings := domain.DefaultSettings()
	rpmSettings.Maintainer = "Packaging Team <pkg@example.com>"
	rpmSettings.PythonBin = "/usr/bin/python3"
	rpmSettings.PythonInstallLib = "/usr/lib/python3/site-packages/"
	rpmSettings.FPM = "/opt/fpm/bin/fpm"

	tests := []struct {
		name       string
		req        domain.BuildRequest
		settings   domain.Settings
		goldenName string
	}{
		{
			name: "dependencies and extra args",
			req: domain.BuildRequest{
				Name:                 "test",
				Path:                 "./home/test/setup.py",
				NoPythonDependencies: true,
				ExtraArgs:            []string{"-d", "test"},
			},
			settings:   domain.DefaultSettings(),
			goldenName: "command_extra_args",
		},
		{
			name: "broken naming scheme",
			req: domain.BuildRequest{
				Name: "PyYAML",
				Path: "./home/PyYAML-3.11/setup.py",
			},
			settings:   domain.DefaultSettings(),
			goldenName: "command_name_exception",
		},
		{
			name: "hotfix iteration",
			req: domain.BuildRequest{
				Name:      "pyyaml",
				Path:      "setup.py",
				Version:   "1.2.0-jenkins-704",
				Iteration: "1",
			},
			settings:   domain.DefaultSettings(),
			goldenName: "command_iteration",
		},
		{
			name: "rpm with custom settings",
			req: domain.BuildRequest{
				Name:    "six",
				Path:    "/tmp/six-1.10.0",
				Version: "1.10.0",
				Target:  domain.TargetRPM,
			},
			settings:   rpmSettings,
			goldenName: "command_rpm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := fpm.Command(tt.req, tt.settings, naming.New(), "files/preremove")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(strings.Join(args, "\n")+"\n"))
		})
	}
}

func TestCommand_ArgumentOrder(t *testing.T) {
	args := fpm.Command(domain.BuildRequest{
		Name:                 "six",
		Path:                 "setup.py",
		Version:              "1.10.0",
		NoPythonDependencies: true,
		ExtraArgs:            []string{domain.ObeyRequirementsFlag},
	}, domain.DefaultSettings(), naming.New(), "pre")

	assert.Equal(t, "fpm", args[0])
	assert.Equal(t, "setup.py", args[len(args)-1])
	assert.Equal(t, domain.ObeyRequirementsFlag, args[len(args)-2])
	assert.Equal(t, "--no-python-dependencies", args[len(args)-3])
	assert.NotContains(t, args, "--name")
}

func newBuilder(t *testing.T, ctrl *gomock.Controller) (*fpm.Builder, *mocks.MockExecutor) {
	t.Helper()
	executor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	builder := fpm.NewBuilder(executor, fs.NewResolver(), mockLogger).
		WithScriptsDir(filepath.Join(t.TempDir(), "scripts"))
	return builder, executor
}

func TestBuilder_Build_ParsesReportedPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)
	outDir := t.TempDir()

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]byte, error) {
			assert.Equal(t, "fpm", cmd.Name)
			assert.Equal(t, outDir, cmd.Dir)
			return []byte(`{:timestamp=>"2015-06-01", :message=>"Created package", :path=>"python-six_1.10.0_all.deb"}` + "\n"), nil
		})

	path, err := builder.Build(context.Background(), domain.BuildRequest{
		Name: "six", Path: "setup.py", Version: "1.10.0", OutputDir: outDir,
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "python-six_1.10.0_all.deb"), path)
}

func TestBuilder_Build_MaterializesPreremove(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)

	var script string
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]byte, error) {
			for _, arg := range cmd.Args {
				if after, ok := strings.CutPrefix(arg, "--before-remove="); ok {
					script = after
				}
			}
			return []byte(`:path=>"/abs/python-six_1_all.deb"`), nil
		})

	path, err := builder.Build(context.Background(), domain.BuildRequest{Name: "six", Path: ".", OutputDir: t.TempDir()})

	require.NoError(t, err)
	assert.Equal(t, "/abs/python-six_1_all.deb", path)
	require.NotEmpty(t, script)
	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, fpm.PreremoveName, filepath.Base(script))
	assert.NotZero(t, info.Mode()&0o100)
}

func TestBuilder_Build_ConfiguredPreremove(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)
	settings := domain.DefaultSettings()
	settings.BeforeRemove = "files/preremove"
	settings.Maintainer = "Ops"

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]byte, error) {
			assert.Contains(t, cmd.Args, "--before-remove=files/preremove")
			assert.Contains(t, cmd.Args, "--maintainer=Ops")
			assert.Contains(t, cmd.Args, "python-yaml")
			return []byte(`:path=>"python-yaml_3.11_all.deb"`), nil
		})

	_, err := builder.Configure(settings, naming.New()).Build(context.Background(), domain.BuildRequest{
		Name: "PyYAML", Path: ".", OutputDir: t.TempDir(),
	})

	require.NoError(t, err)
}

func TestBuilder_Build_FallsBackToGlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)
	outDir := t.TempDir()
	want := filepath.Join(outDir, "python-zope.interface_4.1.2_amd64.deb")

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Command) ([]byte, error) {
			require.NoError(t, os.WriteFile(want, []byte("deb"), 0o600))
			return []byte("Created package\n"), nil
		})

	path, err := builder.Build(context.Background(), domain.BuildRequest{
		Name: "zope.interface", Path: ".", Version: "4.1.2", OutputDir: outDir,
	})

	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestBuilder_Build_NoArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("nothing"), nil)

	_, err := builder.Build(context.Background(), domain.BuildRequest{Name: "six", Path: ".", OutputDir: t.TempDir()})

	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestBuilder_Build_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder, executor := newBuilder(t, ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("partial"), errors.New("exit status 1"))

	_, err := builder.Build(context.Background(), domain.BuildRequest{Name: "six", Path: ".", OutputDir: t.TempDir()})

	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "exit status 1")
}
