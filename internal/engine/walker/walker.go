package walker

import (
	"context"
	"iter"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultMaxRounds bounds a traversal unless WithMaxRounds says otherwise.
const DefaultMaxRounds = 100

// LayerRunner processes one frontier. *LayerBuilder is the production implementation.
type LayerRunner interface {
	Build(ctx context.Context, deps domain.Frontier) (*domain.Layer, error)
}

// Option configures a Walker.
type Option func(*Walker)

// WithSkipSeen drops name and version pairs already handed to an earlier layer.
func WithSkipSeen() Option {
	return func(w *Walker) {
		w.skipSeen = true
	}
}

// WithMaxRounds sets the number of layers after which traversal fails with
// domain.ErrTraversalLimit. Values below one keep the default.
func WithMaxRounds(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.maxRounds = n
		}
	}
}

// Walker runs layers until a frontier yields nothing new.
type Walker struct {
	layers    LayerRunner
	skipSeen  bool
	maxRounds int
}

// New creates a Walker over layers.
func New(layers LayerRunner, opts ...Option) *Walker {
	w := &Walker{layers: layers, maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Frontiers yields one layer per round, starting from seed. Each round is
// handed the Next frontier of the previous one. Iteration ends when a round
// returns no layer; an error is yielded once and ends it as well.
func (w *Walker) Frontiers(ctx context.Context, seed domain.Frontier) iter.Seq2[*domain.Layer, error] {
	return func(yield func(*domain.Layer, error) bool) {
		seen := make(map[domain.VersionedDependency]struct{})
		frontier := seed

		for round := 0; ; round++ {
			if w.skipSeen {
				frontier = unseen(frontier, seen)
			}
			if round >= w.maxRounds && len(frontier) > 0 {
				err := zerr.With(zerr.Wrap(domain.ErrTraversalLimit, "dependency graph did not settle"), "rounds", w.maxRounds)
				yield(nil, zerr.With(err, "pending", frontier.Names()))
				return
			}

			layer, err := w.layers.Build(ctx, frontier)
			if err != nil {
				yield(nil, err)
				return
			}
			if layer == nil {
				return
			}
			if !yield(layer, nil) {
				return
			}
			frontier = layer.Next
		}
	}
}

// Traverse drains Frontiers and returns every packaged dependency.
// A name packaged in several layers keeps the version of the last one.
func (w *Walker) Traverse(ctx context.Context, seed domain.Frontier) (domain.ResolvedSet, error) {
	resolved := make(domain.ResolvedSet)
	for layer, err := range w.Frontiers(ctx, seed) {
		if err != nil {
			return resolved, err
		}
		resolved.Merge(layer.Packaged)
	}
	return resolved, nil
}

// unseen removes the pairs already in seen from f and marks the rest as seen.
func unseen(f domain.Frontier, seen map[domain.VersionedDependency]struct{}) domain.Frontier {
	out := make(domain.Frontier, len(f))
	for name, version := range f {
		dep := domain.VersionedDependency{Name: name, Version: version}
		if _, ok := seen[dep]; ok {
			continue
		}
		seen[dep] = struct{}{}
		out[name] = version
	}
	return out
}
