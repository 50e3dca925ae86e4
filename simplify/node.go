package simplify

import (
	"github.com/logicring/clc/hostir"
	"github.com/logicring/clc/logic"
)

// Node binds one host IR value to the polynomial that represents it. Nodes
// are owned exclusively by the Builder's cache; they are never shared across
// two different host values.
type Node struct {
	Value hostir.Value
	Poly  logic.Polynomial
}

// Builder walks a rooted host IR expression and memoizes one Node per
// visited value, plus the ordered leaf table needed to print and
// reconstruct. A Builder is not safe for concurrent use; disjoint builders
// may run in parallel on disjoint IR.
type Builder struct {
	host hostir.Host
	cfg  Config

	nodes     map[hostir.Value]*Node
	leafSet   map[hostir.Value]int // value -> leaf id, for O(1) dedup + lookup
	leafTable []hostir.Value       // leaf id -> value
}

// NewBuilder returns a Builder bound to host, configured by opts.
func NewBuilder(host hostir.Host, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxLeaves > logic.MaxLeaves {
		panic("simplify: MaxLeaves exceeds the hard ceiling of 62")
	}
	b := &Builder{host: host, cfg: cfg}
	b.Reset()
	return b
}

// Reset clears every owned cache, readying the Builder for a fresh root.
// Simplify and SimplifyWith call this at the start of every invocation, so
// one Builder may be reused safely across many unrelated roots.
func (b *Builder) Reset() {
	b.nodes = make(map[hostir.Value]*Node)
	b.leafSet = make(map[hostir.Value]int)
	b.leafTable = nil
}

// LeafAt returns the host value assigned to leaf id, for debug printing and
// reconstruction.
func (b *Builder) LeafAt(id int) hostir.Value {
	return b.leafTable[id]
}
