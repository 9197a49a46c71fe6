package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Target is the kind of artifact produced for each package.
type Target string

const (
	// TargetDeb builds Debian packages with fpm.
	TargetDeb Target = "deb"
	// TargetRPM builds RPM packages with fpm.
	TargetRPM Target = "rpm"
	// TargetWheel builds Python wheels with pip.
	TargetWheel Target = "wheel"
)

// Targets lists every supported target in flag order.
func Targets() []Target {
	return []Target{TargetDeb, TargetRPM, TargetWheel}
}

// ParseTarget validates a --target value.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TargetDeb, TargetRPM, TargetWheel:
		return t, nil
	case "":
		return TargetDeb, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidTarget, "unsupported --target"), "target", s)
	}
}

// IsNative reports whether the target is built by fpm.
func (t Target) IsNative() bool {
	return t == TargetDeb || t == TargetRPM
}

// Extension returns the artifact file extension including the dot.
func (t Target) Extension() string {
	switch t {
	case TargetRPM:
		return ".rpm"
	case TargetWheel:
		return ".whl"
	default:
		return ".deb"
	}
}

// ArtifactGlob returns the file pattern of an already built artifact.
// nativeName is used for deb and rpm, sourceName for wheels. An empty version matches any.
func (t Target) ArtifactGlob(nativeName, sourceName, version string) string {
	if version == "" {
		version = "*"
	}
	switch t {
	case TargetRPM:
		return nativeName + "-" + version + "-*.rpm"
	case TargetWheel:
		return normalizeWheelName(sourceName) + "-" + version + "-*.whl"
	default:
		return strings.ReplaceAll(nativeName, "_", "-") + "_" + version + "_*.deb"
	}
}

func normalizeWheelName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(strings.ToLower(name))
}
