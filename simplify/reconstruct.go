package simplify

import (
	"github.com/logicring/clc/hostir"
	"github.com/logicring/clc/logic"
)

// ToValue maps n's polynomial back to a host IR value, or reports false if
// no simplification is known. Reconstructing an arbitrary multi-term
// polynomial into the "best" IR is deliberately unimplemented: only the
// empty, single-sentinel, and single-leaf polynomials collapse to a value.
func (b *Builder) ToValue(n *Node) (hostir.Value, bool) {
	switch n.Poly.Size() {
	case 0:
		return b.host.Zero(n.Value.Type()), true
	case 1:
		mask := n.Poly.SingleMask()
		switch mask {
		case logic.ZeroSentinel:
			return b.host.Zero(n.Value.Type()), true
		case logic.AllOnesSentinel:
			return b.host.AllOnes(n.Value.Type()), true
		}
		if id, ok := logic.IsLeafMonomial(mask); ok {
			return b.LeafAt(id), true
		}
		return nil, false
	default:
		return nil, false
	}
}
