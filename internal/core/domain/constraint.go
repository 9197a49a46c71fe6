package domain

import "strings"

// NativePrefix is prepended to every source package name to form its native name.
const NativePrefix = "python-"

// InterpreterName is the native name of the interpreter itself.
// It appears in dependency fields but is never a packageable dependency.
const InterpreterName = "python"

// NativeConstraint is a native dependency declaration: "<name> <op> <version>" or a bare "<name>".
// Values produced by splitting a dpkg field keep their leading whitespace.
type NativeConstraint string

// Name returns the package name component.
func (c NativeConstraint) Name() string {
	name, _, _ := c.parts()
	return name
}

// Operator returns the comparison operator, or "" for a bare name.
func (c NativeConstraint) Operator() string {
	_, op, _ := c.parts()
	return op
}

// Version returns the version component verbatim, or "" for a bare name.
func (c NativeConstraint) Version() string {
	_, _, version := c.parts()
	return version
}

func (c NativeConstraint) parts() (name, op, version string) {
	fields := strings.Fields(string(c))
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return fields[0], "", ""
	case 2:
		return fields[0], fields[1], ""
	default:
		return fields[0], fields[1], strings.Join(fields[2:], " ")
	}
}

// NameException overrides the default "python-" + name scheme for one source package.
type NameException struct {
	Source     string
	NativeBase string
}

// DefaultNameExceptions are the packages whose distro name drops the "py" prefix.
// pycryptodome shares crypto with pycrypto, so the reverse direction keeps the first entry.
func DefaultNameExceptions() []NameException {
	return []NameException{
		{Source: "pyyaml", NativeBase: "yaml"},
		{Source: "pyzmq", NativeBase: "zmq"},
		{Source: "pycrypto", NativeBase: "crypto"},
		{Source: "pycryptodome", NativeBase: "crypto"},
	}
}
