// Package checker is a truth-table evaluator for circuitir circuits, used
// by property-based tests to confirm that Simplify's replacement is
// semantically equivalent to the expression it replaced. It evaluates
// every wire once in definition order, accumulating into a fresh output
// slice.
package checker

import "github.com/logicring/clc/circuitir"

// Eval evaluates every wire of c against a boolean assignment (one entry
// per input, in input order) and returns one bool per instruction, indexed
// by VarID exactly like c.Instructions.
func Eval(c *circuitir.Circuit, assignment []bool) []bool {
	if len(assignment) != c.NbInputs {
		panic("checker: assignment length mismatch")
	}

	vals := make([]bool, len(c.Instructions))
	nextInput := 0
	for id, insn := range c.Instructions {
		switch insn.Kind {
		case circuitir.OpInput:
			vals[id] = assignment[nextInput]
			nextInput++
		case circuitir.OpConstZero:
			vals[id] = false
		case circuitir.OpConstAllOnes:
			vals[id] = true
		case circuitir.OpAnd:
			vals[id] = vals[insn.Args[0]] && vals[insn.Args[1]]
		case circuitir.OpOr:
			vals[id] = vals[insn.Args[0]] || vals[insn.Args[1]]
		case circuitir.OpXor:
			vals[id] = vals[insn.Args[0]] != vals[insn.Args[1]]
		default:
			panic("checker: unknown instruction kind")
		}
	}
	return vals
}

// EveryAssignment calls f once for every one of the 2^NbInputs boolean
// assignments to c's inputs, in ascending binary order.
func EveryAssignment(c *circuitir.Circuit, f func(assignment []bool)) {
	n := c.NbInputs
	total := 1 << n
	assignment := make([]bool, n)
	for bits := 0; bits < total; bits++ {
		for i := 0; i < n; i++ {
			assignment[i] = bits&(1<<i) != 0
		}
		f(assignment)
	}
}
