package pip_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/adapters/pip"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDownloadArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"install", "-q", "puka==1.0.0", "--ignore-installed", "--no-install", "--build=/tmp/123/"},
		pip.DownloadArgs(domain.VersionedDependency{Name: "puka", Version: "1.0.0"}, "/tmp/123/"))

	assert.Equal(t,
		[]string{"install", "-q", "pyyaml", "--ignore-installed", "--no-install", "--build=/tmp/123/"},
		pip.DownloadArgs(domain.VersionedDependency{Name: "pyyaml"}, "/tmp/123/"))
}

func TestClient_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	dest := t.TempDir()
	dep := domain.VersionedDependency{Name: "PyYAML", Version: "3.11"}

	mockExecutor.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "pip2",
		Args: pip.DownloadArgs(dep, dest),
	}).DoAndReturn(func(context.Context, domain.Command) ([]byte, error) {
		srcDir := filepath.Join(dest, "pyyaml")
		require.NoError(t, os.MkdirAll(srcDir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, "setup.py"), []byte(""), 0o600))
		return nil, nil
	})

	got, err := pip.NewClient(mockExecutor, fs.NewWalker()).WithPip("pip2").
		Download(context.Background(), dep, dest)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "pyyaml"), got)
}

func TestClient_Download_Failures(t *testing.T) {
	t.Run("installer exits non-zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockExecutor := mocks.NewMockExecutor(ctrl)
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return([]byte("Could not find a version"), errors.New("exit status 1"))

		_, err := pip.NewClient(mockExecutor, fs.NewWalker()).
			Download(context.Background(), domain.VersionedDependency{Name: "ghost"}, t.TempDir())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	})

	t.Run("nothing unpacked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockExecutor := mocks.NewMockExecutor(ctrl)
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := pip.NewClient(mockExecutor, fs.NewWalker()).
			Download(context.Background(), domain.VersionedDependency{Name: "ghost"}, t.TempDir())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	})
}

func TestWheelBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)

	srcDir := t.TempDir()
	setup := filepath.Join(srcDir, "setup.py")
	require.NoError(t, os.WriteFile(setup, []byte(""), 0o600))
	outDir := filepath.Join(t.TempDir(), "dist")

	mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) ([]byte, error) {
			assert.Equal(t, "pip", cmd.Name)
			assert.Equal(t, pip.WheelArgs(outDir), cmd.Args)
			assert.Equal(t, srcDir, cmd.Dir)
			require.NoError(t, os.WriteFile(filepath.Join(outDir, "zope_interface-4.1.2-cp27-none-linux_x86_64.whl"), []byte("whl"), 0o600))
			return nil, nil
		})

	got, err := pip.NewWheelBuilder(mockExecutor, fs.NewResolver()).Build(context.Background(), domain.BuildRequest{
		Name:      "zope.interface",
		Path:      setup,
		Version:   "4.1.2",
		Target:    domain.TargetWheel,
		OutputDir: outDir,
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "zope_interface-4.1.2-cp27-none-linux_x86_64.whl"), got)
}

func TestWheelBuilder_Build_Failures(t *testing.T) {
	t.Run("pip exits non-zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockExecutor := mocks.NewMockExecutor(ctrl)
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("exit status 1"))

		_, err := pip.NewWheelBuilder(mockExecutor, fs.NewResolver()).Build(context.Background(), domain.BuildRequest{
			Name: "six", Path: t.TempDir(), OutputDir: t.TempDir(),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBuildFailed)
	})

	t.Run("no wheel written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockExecutor := mocks.NewMockExecutor(ctrl)
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := pip.NewWheelBuilder(mockExecutor, fs.NewResolver()).Build(context.Background(), domain.BuildRequest{
			Name: "six", Path: t.TempDir(), OutputDir: t.TempDir(),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})
}
