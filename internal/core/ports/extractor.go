package ports

import "context"

// DependencyExtractor lists the bare dependency names declared by a package.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type DependencyExtractor interface {
	// Extract returns lower-cased source package names without version specifiers.
	//
	// A nil slice means the dependencies could not be determined; an empty
	// non-nil slice means the package declares none.
	Extract(ctx context.Context, path string) ([]string, error)
}
