package circuitir

import "github.com/consensys/gnark/frontend"

// Lower evaluates a circuitir graph against a real gnark circuit builder,
// arithmetizing each logic op into Mul/Add over the constraint field:
//
//	a∧b = a·b          (api.And)
//	a⊕b = a+b-2ab       (api.Xor)
//	a∨b = a+b-ab        (api.Or)
//
// inputs must hold one frontend.Variable per input wire (c.NbInputs),
// already asserted boolean by the caller. Lower returns one
// frontend.Variable per instruction, so the result for wire id is the
// return slice's id'th element. Callers typically only need the root's.
//
// Lower itself passes every And/Or/Xor instruction in c to api.And/
// api.Or/api.Xor; it does not skip wires that Simplify found reducible.
// A caller whose root Simplify collapsed into a bare leaf or constant can
// use that value instead of calling Lower, and so emits none of those
// constraints.
func Lower(api frontend.API, c *Circuit, inputs []frontend.Variable) []frontend.Variable {
	if len(inputs) != c.NbInputs {
		panic("circuitir: wrong number of inputs")
	}

	vars := make([]frontend.Variable, len(c.Instructions))
	nextInput := 0
	for id, insn := range c.Instructions {
		switch insn.Kind {
		case OpInput:
			vars[id] = inputs[nextInput]
			nextInput++
		case OpConstZero:
			vars[id] = 0
		case OpConstAllOnes:
			vars[id] = 1
		case OpAnd:
			vars[id] = api.And(vars[insn.Args[0]], vars[insn.Args[1]])
		case OpOr:
			vars[id] = api.Or(vars[insn.Args[0]], vars[insn.Args[1]])
		case OpXor:
			vars[id] = api.Xor(vars[insn.Args[0]], vars[insn.Args[1]])
		default:
			panic("circuitir: unknown instruction kind")
		}
	}
	return vars
}
