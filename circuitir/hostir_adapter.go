package circuitir

import "github.com/logicring/clc/hostir"

// Value is a wire within a specific Circuit. It is comparable (pointer +
// int), which is what gives it identity equality per hostir.Value's
// contract without any auxiliary identity map.
type Value struct {
	C  *Circuit
	ID VarID
}

// Name implements hostir.Value.
func (v Value) Name() string { return v.C.name(v.ID) }

// wireType is circuitir's only type: every wire is one GF(2) bit.
type wireType struct{}

// Type implements hostir.Value.
func (v Value) Type() hostir.Type { return wireType{} }

// Host implements hostir.Host over a single Circuit, interning the
// canonical constant-zero/all-ones wire so repeated lookups share one
// instruction instead of allocating a fresh constant each time.
type Host struct {
	C *Circuit

	zero, allOnes *VarID
}

// NewHost returns a Host bound to c.
func NewHost(c *Circuit) *Host { return &Host{C: c} }

// ClassifyBinaryOp implements hostir.BinaryOpClassifier.
func (h *Host) ClassifyBinaryOp(v hostir.Value) (op hostir.Op, lhs, rhs hostir.Value, ok bool) {
	cv, isCV := v.(Value)
	if !isCV || cv.C != h.C {
		return 0, nil, nil, false
	}
	insn := h.C.Instructions[cv.ID]
	switch insn.Kind {
	case OpAnd:
		op = hostir.OpAnd
	case OpOr:
		op = hostir.OpOr
	case OpXor:
		op = hostir.OpXor
	default:
		return 0, nil, nil, false
	}
	return op, Value{C: h.C, ID: insn.Args[0]}, Value{C: h.C, ID: insn.Args[1]}, true
}

// IsZero implements hostir.ConstantClassifier.
func (h *Host) IsZero(v hostir.Value) bool {
	cv, ok := v.(Value)
	return ok && cv.C == h.C && h.C.Instructions[cv.ID].Kind == OpConstZero
}

// IsAllOnes implements hostir.ConstantClassifier.
func (h *Host) IsAllOnes(v hostir.Value) bool {
	cv, ok := v.(Value)
	return ok && cv.C == h.C && h.C.Instructions[cv.ID].Kind == OpConstAllOnes
}

// Zero implements hostir.ConstantSynthesizer, interning one ConstZero wire.
func (h *Host) Zero(hostir.Type) hostir.Value {
	if h.zero == nil {
		id := h.C.ConstZero()
		h.zero = &id
	}
	return Value{C: h.C, ID: *h.zero}
}

// AllOnes implements hostir.ConstantSynthesizer, interning one ConstAllOnes wire.
func (h *Host) AllOnes(hostir.Type) hostir.Value {
	if h.allOnes == nil {
		id := h.C.ConstAllOnes()
		h.allOnes = &id
	}
	return Value{C: h.C, ID: *h.allOnes}
}
