// Package pkgmeta reads the dependencies recorded in built packages.
package pkgmeta

import (
	"archive/zip"
	"bufio"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.trai.ch/zerr"
)

// Extractor implements ports.DependencyExtractor for deb, rpm and wheel artifacts.
type Extractor struct {
	executor   ports.Executor
	logger     ports.Logger
	translator *naming.Translator
}

// NewExtractor creates an Extractor using the default name exceptions.
func NewExtractor(executor ports.Executor, logger ports.Logger) *Extractor {
	return &Extractor{
		executor:   executor,
		logger:     logger,
		translator: naming.New(),
	}
}

// WithTranslator returns a copy of the extractor that maps names through t.
func (e *Extractor) WithTranslator(t *naming.Translator) *Extractor {
	c := *e
	c.translator = t
	return &c
}

// Extract returns the source names of the dependencies recorded in the artifact at path.
//
// A nil result means the dependencies are unknown: the tool failed or the
// field was malformed. Both are logged, neither is returned as an error.
func (e *Extractor) Extract(ctx context.Context, path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), domain.TargetWheel.Extension()) {
		return e.fromWheel(path), nil
	}

	field, err := e.readField(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Warn("could not read dependencies of " + path + ": " + err.Error())
		return nil, nil
	}

	constraints, err := e.translator.ParseConstraintList(field)
	if err != nil {
		e.logger.Error(zerr.With(err, "package", path))
		return nil, nil
	}
	return e.translator.ConstraintsToBareNames(constraints), nil
}

// readField returns the dependency field in dpkg syntax.
func (e *Extractor) readField(ctx context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), domain.TargetRPM.Extension()) {
		out, err := e.executor.Run(ctx, domain.Command{Name: "rpm", Args: []string{"-qp", "--requires", path}})
		if err != nil {
			return "", err
		}
		return rpmRequiresToField(string(out)), nil
	}

	out, err := e.executor.Run(ctx, domain.Command{Name: "dpkg", Args: []string{"-f", path, "Depends"}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// rpmRequiresToField joins "rpm --requires" lines into one comma separated field.
// rpm prints "name >= 1.0"; the operator is wrapped in parentheses to match dpkg.
// File dependencies and capabilities such as "rpmlib(...)" or "python(abi)" are dropped.
func rpmRequiresToField(out string) string {
	var entries []string
	for line := range strings.Lines(out) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "rpmlib(") || strings.HasPrefix(line, "/") {
			continue
		}
		fields := strings.Fields(line)
		if strings.ContainsAny(fields[0], "()") {
			continue
		}
		if len(fields) == 3 {
			line = fields[0] + " (" + fields[1] + " " + fields[2] + ")"
		}
		entries = append(entries, line)
	}
	return strings.Join(entries, ", ")
}

func (e *Extractor) fromWheel(path string) []string {
	requires, err := wheelRequires(path)
	if err != nil {
		e.logger.Warn("could not read dependencies of " + path + ": " + err.Error())
		return nil
	}
	return naming.StripSpecifiers(requires)
}

// wheelRequires returns the unconditional Requires-Dist entries of a wheel.
// Entries guarded by an "extra" marker are optional and skipped.
func wheelRequires(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open wheel")
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		dir, name := filepath.Split(f.Name)
		if name != "METADATA" || !strings.HasSuffix(strings.TrimSuffix(dir, "/"), ".dist-info") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open METADATA")
		}
		defer func() { _ = rc.Close() }()
		return parseRequiresDist(rc)
	}
	return nil, zerr.With(errors.New("no .dist-info/METADATA in wheel"), "path", path)
}

func parseRequiresDist(r io.Reader) ([]string, error) {
	requires := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			// the headers end at the first blank line; the description follows
			break
		}
		value, ok := strings.CutPrefix(line, "Requires-Dist:")
		if !ok {
			continue
		}
		if _, marker, found := strings.Cut(value, ";"); found && strings.Contains(marker, "extra") {
			continue
		}
		requires = append(requires, strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read METADATA")
	}
	return requires, nil
}
