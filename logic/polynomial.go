// Package logic implements the Boolean-ring (GF(2)) polynomial algebra that
// the complex-logic-combine simplifier is built on. A Polynomial is the
// XOR-sum of monomials, where a monomial is an AND-chain of leaf bits packed
// into a single 64-bit mask.
package logic

import (
	"math/bits"
	"sort"
)

// Monomial is an and-chain: leaf bit i set means leaf i is a conjunct.
// The two highest bits are reserved sentinels, never ordinary leaf bits.
type Monomial = uint64

const (
	// ZeroSentinel marks the absorbing constant 0. It never appears
	// alongside another monomial once a Polynomial has gone through *=.
	ZeroSentinel Monomial = 1 << 62
	// AllOnesSentinel marks the multiplicative identity 1 (all-ones).
	AllOnesSentinel Monomial = 1 << 63
	// MaxLeaves is the hard ceiling on distinct leaves in one expression,
	// imposed by the 62 non-sentinel bits available in the mask.
	MaxLeaves = 62
)

// LeafMonomial returns the monomial for a lone leaf bit id.
func LeafMonomial(id int) Monomial {
	return Monomial(1) << uint(id)
}

// IsLeafMonomial reports whether m is a one-hot, non-sentinel mask, and if
// so returns its leaf id.
func IsLeafMonomial(m Monomial) (id int, ok bool) {
	if m == 0 || m&(ZeroSentinel|AllOnesSentinel) != 0 {
		return 0, false
	}
	if bits.OnesCount64(uint64(m)) != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(m)), true
}

// Polynomial is an unordered set of monomials, interpreted as their XOR.
// The zero value is the empty polynomial, i.e. the constant 0.
type Polynomial struct {
	terms    map[Monomial]struct{}
	leafMask Monomial
}

// NewEmpty returns the polynomial denoting the constant 0.
func NewEmpty() Polynomial {
	return Polynomial{}
}

// NewMonomial returns the polynomial consisting of the single monomial m.
func NewMonomial(m Monomial) Polynomial {
	p := Polynomial{terms: map[Monomial]struct{}{m: {}}}
	p.refreshLeafMask()
	return p
}

// Size returns the number of monomials in the polynomial.
func (p Polynomial) Size() int {
	return len(p.terms)
}

// Masks returns the polynomial's monomials in ascending numeric order.
// Iteration order has no algebraic meaning; a deterministic order only
// keeps debug output stable.
func (p Polynomial) Masks() []Monomial {
	out := make([]Monomial, 0, len(p.terms))
	for m := range p.terms {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SingleMask returns the polynomial's only monomial. It panics if Size() != 1;
// callers must check Size() first.
func (p Polynomial) SingleMask() Monomial {
	if len(p.terms) != 1 {
		panic("logic: SingleMask called on a non-singleton polynomial")
	}
	for m := range p.terms {
		return m
	}
	panic("unreachable")
}

// LeafMask is the bitwise OR of every monomial currently in the polynomial.
// It carries no algebraic meaning by itself and is never consulted by the
// builder, reconstruction or debug-printing steps; it is kept only as a
// cheap summary of the referenced leaves.
func (p Polynomial) LeafMask() Monomial {
	return p.leafMask
}

func (p *Polynomial) refreshLeafMask() {
	var m Monomial
	for t := range p.terms {
		m |= t
	}
	p.leafMask = m
}

func (p *Polynomial) ensure() {
	if p.terms == nil {
		p.terms = make(map[Monomial]struct{})
	}
}

// toggle inserts mask if absent, removes it if present (GF(2) cancellation).
func (p *Polynomial) toggle(mask Monomial) {
	p.ensure()
	if _, ok := p.terms[mask]; ok {
		delete(p.terms, mask)
	} else {
		p.terms[mask] = struct{}{}
	}
}

// Add is ring addition, i.e. XOR: symmetric difference of the two monomial sets.
func Add(a, b Polynomial) Polynomial {
	r := a.clone()
	for _, m := range b.Masks() {
		r.toggle(m)
	}
	r.refreshLeafMask()
	return r
}

// Mul is ring multiplication, i.e. AND: distribute over every pair of
// monomials, exploiting x*x=x (mask-OR) and absorbing/identity sentinels.
func Mul(a, b Polynomial) Polynomial {
	r := Polynomial{terms: make(map[Monomial]struct{})}
	for _, lhs := range a.Masks() {
		if lhs&ZeroSentinel != 0 {
			continue
		}
		for _, rhs := range b.Masks() {
			if rhs&ZeroSentinel != 0 {
				continue
			}
			m := lhs | rhs
			if m != AllOnesSentinel && m&AllOnesSentinel != 0 {
				m &^= AllOnesSentinel
			}
			r.toggle(m)
		}
	}
	r.refreshLeafMask()
	return r
}

// Xor is ring addition, spelled the way callers that think in logic ops expect.
func Xor(a, b Polynomial) Polynomial { return Add(a, b) }

// And is ring multiplication, spelled the way callers that think in logic ops expect.
func And(a, b Polynomial) Polynomial { return Mul(a, b) }

// Or implements a ∨ b = a·b ⊕ a ⊕ b, the Boolean-ring identity for OR.
func Or(a, b Polynomial) Polynomial {
	return Add(Add(Mul(a, b), a), b)
}

// Not implements ¬a = a ⊕ 1, XOR with the all-ones sentinel polynomial.
func Not(a Polynomial) Polynomial {
	return Add(a, NewMonomial(AllOnesSentinel))
}

func (p Polynomial) clone() Polynomial {
	r := Polynomial{terms: make(map[Monomial]struct{}, len(p.terms))}
	for m := range p.terms {
		r.terms[m] = struct{}{}
	}
	r.leafMask = p.leafMask
	return r
}

// Equal reports whether p and o denote the same polynomial, i.e. the same
// set of monomials regardless of insertion order.
func (p Polynomial) Equal(o Polynomial) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	for m := range p.terms {
		if _, ok := o.terms[m]; !ok {
			return false
		}
	}
	return true
}
