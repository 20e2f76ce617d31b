package dijkstra

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not created WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates the target cannot be reached (or, for SecondShortest,
	// that no route other than the shortest one exists).
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of the Dijkstra family of functions.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices farther than this are not explored. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0.
// Logger           – optional structured logger; nil disables logging.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is reported as ErrBadMaxDistance when the search starts.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// A value ≤ 0 is reported as ErrBadInfThreshold when the search starts.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes debug events through l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options for the given source with no distance cap,
// no impassable edges, no predecessor map and logging disabled.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Path is a route from the source to a target.
type Path struct {
	// Distance is the total weight of the route.
	Distance int64

	// Vertices lists the visited vertex IDs from source to target, inclusive.
	// A vertex may repeat when the route contains a cycle.
	Vertices []string

	// Edges lists the traversed edge IDs in order; len(Edges) == len(Vertices)-1.
	Edges []string
}
