package minilang

import "github.com/logicring/clc/hostir"

// Type implements hostir.Value.
func (n *Node) Type() hostir.Type { return BoolType }

// Host implements hostir.Host over a minilang AST. It carries no state of
// its own beyond interning the canonical zero/all-ones node per type, the
// way LLVM's Constant::getNullValue/getAllOnesValue intern per-type
// constants.
type Host struct {
	zero    map[hostir.Type]*Node
	allOnes map[hostir.Type]*Node
}

// NewHost returns a ready-to-use minilang Host.
func NewHost() *Host {
	return &Host{zero: map[hostir.Type]*Node{}, allOnes: map[hostir.Type]*Node{}}
}

// ClassifyBinaryOp implements hostir.BinaryOpClassifier.
func (h *Host) ClassifyBinaryOp(v hostir.Value) (op hostir.Op, lhs, rhs hostir.Value, ok bool) {
	n, isNode := v.(*Node)
	if !isNode || n.kind != kBinOp {
		return 0, nil, nil, false
	}
	switch n.op {
	case OpAnd:
		return hostir.OpAnd, n.left, n.right, true
	case OpOr:
		return hostir.OpOr, n.left, n.right, true
	case OpXor:
		return hostir.OpXor, n.left, n.right, true
	default:
		return 0, nil, nil, false
	}
}

// IsZero implements hostir.ConstantClassifier.
func (h *Host) IsZero(v hostir.Value) bool {
	n, ok := v.(*Node)
	return ok && n.kind == kConst && n.cst == constZero
}

// IsAllOnes implements hostir.ConstantClassifier.
func (h *Host) IsAllOnes(v hostir.Value) bool {
	n, ok := v.(*Node)
	return ok && n.kind == kConst && n.cst == constAllOnes
}

// Zero implements hostir.ConstantSynthesizer, interning one zero Node per type.
func (h *Host) Zero(t hostir.Type) hostir.Value {
	if n, ok := h.zero[t]; ok {
		return n
	}
	n := Zero()
	h.zero[t] = n
	return n
}

// AllOnes implements hostir.ConstantSynthesizer, interning one all-ones Node per type.
func (h *Host) AllOnes(t hostir.Type) hostir.Value {
	if n, ok := h.allOnes[t]; ok {
		return n
	}
	n := AllOnes()
	h.allOnes[t] = n
	return n
}
