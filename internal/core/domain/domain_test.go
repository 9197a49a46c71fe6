package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/core/domain"
)

func TestPinTable_Lookup(t *testing.T) {
	pins := domain.NewPinTable(map[string]string{
		"PyYAML":     "1.0.0",
		"puka":       "2.0.0",
		"setuptools": " 3.0.0 ",
	})

	got := pins.Lookup([]string{"pyyaml", "puka", "setuptools", "pyzmq"})

	assert.Equal(t, domain.Frontier{
		"pyyaml":     "1.0.0",
		"puka":       "2.0.0",
		"setuptools": "3.0.0",
		"pyzmq":      "",
	}, got)
	assert.Equal(t, 3, pins.Len())
}

func TestPinTable_LookupKeepsCallerCasing(t *testing.T) {
	pins := domain.NewPinTable(map[string]string{"pyyaml": "5.1"})

	got := pins.Lookup([]string{"PyYAML"})

	require.Contains(t, got, "PyYAML")
	assert.Equal(t, "5.1", got["PyYAML"])
}

func TestFrontier_NamesSorted(t *testing.T) {
	f := domain.Frontier{"pyyaml": "1.0.0", "puka": "", "pyasn1": "2.0.0"}

	assert.Equal(t, []string{"puka", "pyasn1", "pyyaml"}, f.Names())
	assert.Equal(t, []domain.VersionedDependency{
		{Name: "puka"},
		{Name: "pyasn1", Version: "2.0.0"},
		{Name: "pyyaml", Version: "1.0.0"},
	}, f.Dependencies())
}

func TestResolvedSet_MergeLastWriteWins(t *testing.T) {
	set := domain.ResolvedSet{}
	set.Merge(domain.Frontier{"six": "1.0", "requests": "2.0"})
	set.Merge(domain.Frontier{"six": "1.16"})

	assert.Equal(t, domain.ResolvedSet{"six": "1.16", "requests": "2.0"}, set)
	assert.Equal(t, []string{"requests==2.0", "six==1.16"}, set.Requirements())
}

func TestFilter_Allows(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.Filter
		pkg    string
		want   bool
	}{
		{name: "empty filter allows all", pkg: "six", want: true},
		{name: "exclude matches ignoring case", filter: domain.Filter{Exclude: []string{"Six"}}, pkg: "six", want: false},
		{name: "include restricts", filter: domain.Filter{Include: []string{"puka"}}, pkg: "six", want: false},
		{name: "include admits", filter: domain.Filter{Include: []string{"puka"}}, pkg: "PUKA", want: true},
		{
			name:   "exclude wins over include",
			filter: domain.Filter{Include: []string{"puka"}, Exclude: []string{"puka"}},
			pkg:    "puka",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Allows(tt.pkg))
		})
	}
}

func TestNativeConstraint_Parts(t *testing.T) {
	tests := []struct {
		in      domain.NativeConstraint
		name    string
		op      string
		version string
	}{
		{in: "erlang-nox >= 1:13.b.3", name: "erlang-nox", op: ">=", version: "1:13.b.3"},
		{in: " adduser = 3.1", name: "adduser", op: "=", version: "3.1"},
		{in: " logrotate", name: "logrotate"},
		{in: "", name: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.name, tt.in.Name())
			assert.Equal(t, tt.op, tt.in.Operator())
			assert.Equal(t, tt.version, tt.in.Version())
		})
	}
}

func TestParseTarget(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want domain.Target
	}{
		{"deb", domain.TargetDeb},
		{"RPM", domain.TargetRPM},
		{"wheel", domain.TargetWheel},
		{"", domain.TargetDeb},
	} {
		got, err := domain.ParseTarget(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.ParseTarget("msi")
	require.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestTarget_ArtifactGlob(t *testing.T) {
	assert.Equal(t, "python-package-1_4.0.0_*.deb",
		domain.TargetDeb.ArtifactGlob("python-package_1", "package_1", "4.0.0"))
	assert.Equal(t, "python-yaml_*_*.deb",
		domain.TargetDeb.ArtifactGlob("python-yaml", "pyyaml", ""))
	assert.Equal(t, "python-puka-1.0-*.rpm",
		domain.TargetRPM.ArtifactGlob("python-puka", "puka", "1.0"))
	assert.Equal(t, "zope_interface-5.0-*.whl",
		domain.TargetWheel.ArtifactGlob("python-zope.interface", "zope.interface", "5.0"))
}

func TestBuildRequest_FullVersion(t *testing.T) {
	assert.Equal(t, "1.2.0-jenkins-704.1",
		domain.BuildRequest{Version: "1.2.0-jenkins-704", Iteration: "1"}.FullVersion())
	assert.Equal(t, "1.2.0", domain.BuildRequest{Version: "1.2.0"}.FullVersion())
	assert.Empty(t, domain.BuildRequest{Iteration: "3"}.FullVersion())
}

func TestDependencyState_IsFailure(t *testing.T) {
	assert.True(t, domain.StateDownloadFailed.IsFailure())
	assert.True(t, domain.StateBuildFailed.IsFailure())
	assert.False(t, domain.StateSkipped.IsFailure())
}
