package circuitir_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/logicring/clc/circuitir"
	"github.com/logicring/clc/simplify"
	"github.com/stretchr/testify/require"
)

// selfXorCircuit defines Out == (A&B) ^ (A&B), which the simplifier
// collapses to the constant 0 before a single And/Xor constraint is ever
// emitted by Lower.
type selfXorCircuit struct {
	A, B frontend.Variable
	Out  frontend.Variable
}

func (circ *selfXorCircuit) Define(api frontend.API) error {
	c := circuitir.NewCircuit(2, "a", "b")
	a, b := circuitir.VarID(0), circuitir.VarID(1)
	ab1 := c.And(a, b)
	ab2 := c.And(a, b)
	root := c.Xor(ab1, ab2)

	host := circuitir.NewHost(c)
	result, changed := simplify.Simplify(host, circuitir.Value{C: c, ID: root}, nil)

	if changed && host.IsZero(result) {
		api.AssertIsEqual(circ.Out, 0)
		return nil
	}

	vars := circuitir.Lower(api, c, []frontend.Variable{circ.A, circ.B})
	api.AssertIsEqual(circ.Out, vars[root])
	return nil
}

func TestSimplifiedCircuitCompiles(t *testing.T) {
	_, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &selfXorCircuit{})
	require.NoError(t, err)
}
