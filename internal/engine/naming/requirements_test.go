package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinpack/internal/engine/naming"
)

func TestStripSpecifiers(t *testing.T) {
	got := naming.StripSpecifiers([]string{
		"test1==1.0.0", "Test2<=2.0.0", "test3>=3.0.0", "Test4!=4.0.0", "Test5",
	})

	assert.Equal(t, []string{"test1", "test2", "test3", "test4", "test5"}, got)
}

func TestStripSpecifier(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "zope.interface~=4.1", want: "zope.interface", wantOK: true},
		{in: "requests[security] >= 2.0", want: "requests", wantOK: true},
		{in: "six; python_version < '3'", want: "six", wantOK: true},
		{in: "  python-dateutil (>=2.1)", want: "python-dateutil", wantOK: true},
		{in: "pkg_name<1", want: "pkg_name", wantOK: true},
		{in: "", wantOK: false},
		{in: ">=1.0", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := naming.StripSpecifier(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripSpecifiers_Empty(t *testing.T) {
	got := naming.StripSpecifiers([]string{"", "# comment", "   "})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
