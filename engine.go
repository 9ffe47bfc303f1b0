// Package lagraph implements a graph-analytics core on top of a
// GraphBLAS-style sparse matrix engine: BFS, connected components,
// triangle counting and centrality, k-truss, single-source shortest paths,
// label-propagation community detection, maximal independent set and
// matching, coarsening, HITS, and batched betweenness centrality.
package lagraph

import (
	"sync"

	grb "github.com/intel/forGraphBLASGo/GrB"
)

// Element is the set of domains the engine natively supports for matrix and
// vector entries (§3). User-defined types are out of scope for this
// module.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer restricts Element to the domains single-source shortest path
// (§4.H) requires a non-negative, overflow-aware edge weight from.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Real restricts Element to the floating-point domains HITS (§4.M) and
// betweenness centrality (§4.N) produce their outputs in.
type Real interface {
	~float32 | ~float64
}

// Kind tags a Graph as directed or undirected (§3).
type Kind int

const (
	Undirected Kind = iota
	Directed
)

// Tristate models a cached boolean property that may not yet be known
// (§3: is_symmetric_structure).
type Tristate int

const (
	UnknownTri Tristate = iota
	TristateTrue
	TristateFalse
)

// context is the engine-context object Design Notes §9 calls for: a single
// place the process-global operator handles and thread counts live,
// instead of file-scope mutable state visible to multiple translation
// units. Most semirings used by this module are generic over their element
// type and so are built fresh (cheaply) per call via the constructors
// below; the one operator that is inherently fixed-type --- the boolean
// (lor, land) semiring used by MIS's neighbour elimination --- is built
// once here, mirroring the source's global boolean `land` monoid.
type context struct {
	mu           sync.Mutex
	initialized  bool
	outerThreads int
	innerThreads int
	lorLand      grb.Semiring[bool, bool, bool]
}

var global context

// Init initialises the engine and installs the process-global operator
// state and thread counts (§5).
// Calling it twice returns AlreadyInitialised-shaped error
// (reported here as InvalidValue, since that status is not separately
// enumerated in §6/§7's shared error list).
func Init(outerThreads, innerThreads int) error {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.initialized {
		return newError(InvalidValue, "lagraph.Init", "already initialised")
	}
	if outerThreads <= 0 || innerThreads <= 0 {
		return newError(InvalidValue, "lagraph.Init", "thread counts must be positive, got (%d, %d)", outerThreads, innerThreads)
	}
	if err := grb.Init(grb.NonBlocking); err != nil {
		return wrapEngine("lagraph.Init", err)
	}
	global.lorLand = grb.LorLandSemiring()
	global.outerThreads = outerThreads
	global.innerThreads = innerThreads
	global.initialized = true
	return nil
}

// Finalize releases all process-global operators (§5). Any call made after
// Finalize is undefined, matching the source's own contract.
func Finalize() error {
	global.mu.Lock()
	defer global.mu.Unlock()
	if !global.initialized {
		return newError(InvalidValue, "lagraph.Finalize", "not initialised")
	}
	global.initialized = false
	return wrapEngine("lagraph.Finalize", grb.Finalize())
}

// GetNumThreads returns the outer and inner thread counts seeded into both
// this module's sort primitives and the engine's own parallel kernels.
func GetNumThreads() (outer, inner int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.outerThreads, global.innerThreads
}

// SetNumThreads updates the outer and inner thread counts. Setting either
// to zero is InvalidValue (§5).
func SetNumThreads(outer, inner int) error {
	if outer <= 0 || inner <= 0 {
		return newError(InvalidValue, "lagraph.SetNumThreads", "thread counts must be positive, got (%d, %d)", outer, inner)
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.outerThreads = outer
	global.innerThreads = inner
	return nil
}

func lorLandSemiring() grb.Semiring[bool, bool, bool] {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.lorLand
}
