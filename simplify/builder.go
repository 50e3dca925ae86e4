package simplify

import (
	"github.com/logicring/clc/hostir"
	"github.com/logicring/clc/logic"
)

// GetNode returns the cached or newly constructed Node for root, or false
// if any bound (depth, leaf budget) was violated anywhere in the walk.
// The root is visited at depth 0, so a root that is not itself a supported
// binary AND/OR/XOR is classified as a leaf at depth 0 and visitLeaf
// immediately bails out: there is nothing to simplify in that case.
func (b *Builder) GetNode(root hostir.Value) (*Node, bool) {
	return b.getNode(root, 0)
}

func (b *Builder) getNode(v hostir.Value, depth int) (*Node, bool) {
	if depth == b.cfg.MaxDepth {
		return nil, false
	}

	if n, ok := b.nodes[v]; ok {
		return n, true
	}

	var n *Node
	var ok bool
	if op, lhs, rhs, isBinOp := b.host.ClassifyBinaryOp(v); isBinOp {
		n, ok = b.visitBinOp(v, op, lhs, rhs, depth)
	} else {
		n, ok = b.visitLeaf(v, depth)
	}
	if !ok {
		return nil, false
	}
	b.nodes[v] = n
	b.logNode(n)
	return n, true
}

func (b *Builder) visitBinOp(v hostir.Value, op hostir.Op, lhs, rhs hostir.Value, depth int) (*Node, bool) {
	l, ok := b.getNode(lhs, depth+1)
	if !ok {
		return nil, false
	}
	r, ok := b.getNode(rhs, depth+1)
	if !ok {
		return nil, false
	}

	var poly logic.Polynomial
	switch op {
	case hostir.OpAnd:
		poly = logic.And(l.Poly, r.Poly)
	case hostir.OpOr:
		poly = logic.Or(l.Poly, r.Poly)
	case hostir.OpXor:
		poly = logic.Xor(l.Poly, r.Poly)
	default:
		panic("simplify: unsupported hostir.Op")
	}
	return &Node{Value: v, Poly: poly}, true
}

// visitLeaf assigns v a fresh leaf bit, or maps it to a sentinel monomial if
// it is the integer constant 0 or all-ones.
func (b *Builder) visitLeaf(v hostir.Value, depth int) (*Node, bool) {
	if depth == 0 {
		// The root itself is not a supported binary op; nothing to do.
		return nil, false
	}
	if len(b.leafSet) > b.cfg.MaxLeaves {
		return nil, false
	}

	switch {
	case b.host.IsZero(v):
		return &Node{Value: v, Poly: logic.NewMonomial(logic.ZeroSentinel)}, true
	case b.host.IsAllOnes(v):
		return &Node{Value: v, Poly: logic.NewMonomial(logic.AllOnesSentinel)}, true
	}

	id, seen := b.leafSet[v]
	if !seen {
		id = len(b.leafTable)
		if id >= logic.MaxLeaves {
			// Bits 62 and 63 are the sentinels; no leaf may take them.
			return nil, false
		}
		b.leafTable = append(b.leafTable, v)
		b.leafSet[v] = id
	}
	return &Node{Value: v, Poly: logic.NewMonomial(logic.LeafMonomial(id))}, true
}
