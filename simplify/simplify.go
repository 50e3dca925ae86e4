// Package simplify is the public entry point of the complex-logic-combine
// core: it chains the builder and reconstruction steps and reports whether
// it found a genuinely simpler replacement for a host IR value.
package simplify

import (
	"sync/atomic"

	"github.com/logicring/clc/hostir"
)

// Stats counts successful rewrites across any number of Simplify calls. The
// zero value is ready to use; the counter is safe under concurrent use via
// atomic.Int64, so one Stats may be shared across goroutines simplifying
// disjoint roots.
type Stats struct {
	numSimplified atomic.Int64
}

// NumSimplified returns the number of successful rewrites recorded so far.
func (s *Stats) NumSimplified() int64 {
	return s.numSimplified.Load()
}

func (s *Stats) recordSimplified() {
	s.numSimplified.Add(1)
}

// Simplify attempts to discover an algebraically simpler equivalent for
// root. It returns the replacement value and true on success, or
// (nil, false) if no simplification was found. This covers every internal
// bail condition (depth exceeded, leaf budget exceeded, unsupported root,
// no reduction found, result identical to root): they are all silent and
// benign, never an error.
//
// Simplify builds its own Builder and resets it before use, so it is safe
// to call repeatedly and concurrently on disjoint roots (each call gets an
// independent cache).
func Simplify(host hostir.Host, root hostir.Value, stats *Stats, opts ...Option) (hostir.Value, bool) {
	b := NewBuilder(host, opts...)
	return SimplifyWith(b, root, stats)
}

// SimplifyWith runs the same algorithm as Simplify but reuses an existing
// Builder, resetting its caches first. Use this to reuse a Builder's
// configuration (and logger) across many roots without reallocating it.
func SimplifyWith(b *Builder, root hostir.Value, stats *Stats) (hostir.Value, bool) {
	b.Reset()

	node, ok := b.GetNode(root)
	if !ok {
		return nil, false
	}

	newValue, ok := b.ToValue(node)
	if !ok {
		return nil, false
	}
	if newValue == root {
		return nil, false
	}

	if stats != nil {
		stats.recordSimplified()
	}
	return newValue, true
}
