package fpm

import (
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/engine/naming"
)

// Command returns the fpm argument vector, program name included, that
// packages req. preremove is the path of the before-remove script.
func Command(req domain.BuildRequest, settings domain.Settings, translator *naming.Translator, preremove string) []string {
	target := req.Target
	if !target.IsNative() {
		target = domain.TargetDeb
	}

	args := []string{settings.FPM}
	if translator.HasException(req.Name) {
		args = append(args, "--name", translator.ToNativeName(req.Name))
	}
	args = append(args, "-s", "python", "-t", string(target), "-f")
	if v := req.FullVersion(); v != "" {
		args = append(args, "--version="+v)
	}
	args = append(args,
		"--maintainer="+settings.Maintainer,
		"--exclude=*.pyc",
		"--exclude=*.pyo",
		"--depends=python",
		"--category=python",
		"--python-bin="+settings.PythonBin,
		"--template-scripts",
		"--python-install-lib="+settings.PythonInstallLib,
		"--python-install-bin="+settings.PythonInstallBin,
		"--before-remove="+preremove,
	)
	if req.NoPythonDependencies {
		args = append(args, "--no-python-dependencies")
	}
	args = append(args, req.ExtraArgs...)
	return append(args, req.Path)
}
