package config

// Pinfile represents the structure of the pinpack.yaml settings file.
// Empty fields keep their default.
type Pinfile struct {
	Maintainer       string         `yaml:"maintainer"`
	PythonBin        string         `yaml:"python_bin"`
	PythonInstallLib string         `yaml:"python_install_lib"`
	PythonInstallBin string         `yaml:"python_install_bin"`
	BeforeRemove     string         `yaml:"before_remove"`
	FPM              string         `yaml:"fpm"`
	Pip              string         `yaml:"pip"`
	Python           string         `yaml:"python"`
	Target           string         `yaml:"target"`
	NameExceptions   []ExceptionDTO `yaml:"name_exceptions"`
}

// ExceptionDTO represents one name exception entry.
type ExceptionDTO struct {
	Source string `yaml:"source"`
	Native string `yaml:"native"`
}
