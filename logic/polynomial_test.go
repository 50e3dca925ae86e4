package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(id int) Polynomial { return NewMonomial(LeafMonomial(id)) }

func one() Polynomial  { return NewMonomial(AllOnesSentinel) }
func zero() Polynomial { return NewEmpty() }

func TestAdditiveIdentity(t *testing.T) {
	a := Xor(leaf(0), leaf(1))
	assert.True(t, Add(a, zero()).Equal(a))
}

func TestSelfCancellation(t *testing.T) {
	a := Xor(leaf(0), leaf(1))
	assert.True(t, Add(a, a).Equal(zero()))
}

func TestCommutativity(t *testing.T) {
	a, b := leaf(0), leaf(1)
	assert.True(t, Add(a, b).Equal(Add(b, a)))
	assert.True(t, Mul(a, b).Equal(Mul(b, a)))
}

func TestAssociativity(t *testing.T) {
	a, b, c := leaf(0), leaf(1), leaf(2)
	assert.True(t, Add(Add(a, b), c).Equal(Add(a, Add(b, c))))
	assert.True(t, Mul(Mul(a, b), c).Equal(Mul(a, Mul(b, c))))
}

func TestDistributivity(t *testing.T) {
	a, b, c := leaf(0), leaf(1), leaf(2)
	lhs := Mul(a, Add(b, c))
	rhs := Add(Mul(a, b), Mul(a, c))
	assert.True(t, lhs.Equal(rhs))
}

func TestAndIdempotence(t *testing.T) {
	a := leaf(0)
	assert.True(t, Mul(a, a).Equal(a))
}

func TestAbsorbingZero(t *testing.T) {
	a := leaf(0)
	assert.True(t, Mul(zero(), a).Equal(zero()))
}

func TestMultiplicativeIdentity(t *testing.T) {
	a := leaf(0)
	assert.True(t, Mul(one(), a).Equal(a))
}

func TestNotViaXorWithOne(t *testing.T) {
	a := leaf(0)
	assert.True(t, Not(a).Equal(Add(a, one())))
	assert.True(t, Not(Not(a)).Equal(a))
}

func TestOrIdentity(t *testing.T) {
	a, b := leaf(0), leaf(1)
	assert.True(t, Or(a, b).Equal(Add(Add(Mul(a, b), a), b)))
}

func TestAndOfLeafAndComplement(t *testing.T) {
	// a & ~a -> 0
	a := leaf(0)
	assert.True(t, Mul(a, Not(a)).Equal(zero()))
}

func TestOrOfLeafAndComplement(t *testing.T) {
	// a | ~a -> 1
	a := leaf(0)
	assert.True(t, Or(a, Not(a)).Equal(one()))
}

func TestIsLeafMonomial(t *testing.T) {
	id, ok := IsLeafMonomial(LeafMonomial(5))
	assert.True(t, ok)
	assert.Equal(t, 5, id)

	_, ok = IsLeafMonomial(ZeroSentinel)
	assert.False(t, ok)

	_, ok = IsLeafMonomial(AllOnesSentinel)
	assert.False(t, ok)

	_, ok = IsLeafMonomial(LeafMonomial(0) | LeafMonomial(1))
	assert.False(t, ok)
}

func TestLeafMaskIsUnionOfMonomials(t *testing.T) {
	p := Xor(leaf(0), Mul(leaf(1), leaf(2)))
	assert.Equal(t, LeafMonomial(0)|LeafMonomial(1)|LeafMonomial(2), p.LeafMask())
}
