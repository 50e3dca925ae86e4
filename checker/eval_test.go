package checker_test

import (
	"math/rand"
	"testing"

	"github.com/logicring/clc/checker"
	"github.com/logicring/clc/circuitir"
	"github.com/logicring/clc/simplify"
	"github.com/stretchr/testify/assert"
)

// randomCircuit builds a random AND/OR/XOR expression tree over n leaf
// inputs plus occasional 0/-1 constants, bounded by depth, and returns the
// circuit and its root wire.
func randomCircuit(rng *rand.Rand, n, maxDepth int) (*circuitir.Circuit, circuitir.VarID) {
	c := circuitir.NewCircuit(n)
	var build func(depth int) circuitir.VarID
	build = func(depth int) circuitir.VarID {
		if depth >= maxDepth || rng.Intn(3) == 0 {
			switch rng.Intn(8) {
			case 0:
				return c.ConstZero()
			case 1:
				return c.ConstAllOnes()
			default:
				return circuitir.VarID(rng.Intn(n))
			}
		}
		l, r := build(depth+1), build(depth+1)
		switch rng.Intn(3) {
		case 0:
			return c.And(l, r)
		case 1:
			return c.Or(l, r)
		default:
			return c.Xor(l, r)
		}
	}
	return c, build(0)
}

func TestSimplifyPreservesSemantics(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(5)
		c, root := randomCircuit(rng, n, 5)
		host := circuitir.NewHost(c)

		got, changed := simplify.Simplify(host, circuitir.Value{C: c, ID: root}, nil)
		if !changed {
			continue
		}
		gotWire := got.(circuitir.Value).ID

		checker.EveryAssignment(c, func(assignment []bool) {
			vals := checker.Eval(c, assignment)
			assert.Equal(t, vals[root], vals[gotWire],
				"trial %d: simplified wire disagrees with original for assignment %v", trial, assignment)
		})
	}
}
