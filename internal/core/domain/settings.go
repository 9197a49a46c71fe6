package domain

// Settings holds the packaging defaults that can be overridden by pinpack.yaml.
type Settings struct {
	Maintainer       string
	PythonBin        string
	PythonInstallLib string
	PythonInstallBin string
	BeforeRemove     string
	FPM              string
	Pip              string
	Python           string
	Target           Target
	NameExceptions   []NameException
}

// DefaultSettings returns the values used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Maintainer:       "CSI",
		PythonBin:        "/usr/bin/python",
		PythonInstallLib: "/usr/lib/python2.7/dist-packages/",
		PythonInstallBin: "/usr/local/bin/",
		FPM:              "fpm",
		Pip:              "pip",
		Python:           "python",
		Target:           TargetDeb,
	}
}

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

// Argv returns the full argument vector.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
