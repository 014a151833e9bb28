/*
File    : minicc/codegen/optimizer.go

Optimize runs a bounded fixed-point peephole optimizer over raw TAC:
constant folding, algebraic-identity simplification, and dead-store
elimination, each pass feeding the next, stopping as soon as a pass makes
no change or after five passes, whichever comes first (bounding
optimization at five passes so a pathological program can't loop forever).
*/
package codegen

import (
	"strconv"
	"strings"
)

const maxOptimizationPasses = 5

var arithmeticOps = map[string]bool{
	"ADD": true, "SUB": true, "MUL": true, "DIV": true, "MOD": true,
	"EQ": true, "NE": true, "LT": true, "GT": true, "LE": true, "GE": true,
	"AND": true, "OR": true,
}

// Optimize returns the optimized instruction list and the number of passes
// actually run (<= maxOptimizationPasses).
func Optimize(instructions []Instruction) ([]Instruction, int) {
	current := append([]Instruction(nil), instructions...)
	passes := 0
	for passes < maxOptimizationPasses {
		next, changed := optimizePass(current)
		passes++
		current = next
		if !changed {
			break
		}
	}
	return current, passes
}

func optimizePass(instructions []Instruction) ([]Instruction, bool) {
	changed := false

	folded := make([]Instruction, len(instructions))
	for i, ins := range instructions {
		f, did := foldConstant(ins)
		folded[i] = f
		changed = changed || did
	}

	simplified := make([]Instruction, len(folded))
	for i, ins := range folded {
		s, did := simplifyAlgebraic(ins)
		simplified[i] = s
		changed = changed || did
	}

	pruned, didPrune := eliminateDeadStores(simplified)
	changed = changed || didPrune

	return pruned, changed
}

// foldConstant collapses an arithmetic op over two integer-literal operands
// into a plain ASSIGN of the computed value.
func foldConstant(ins Instruction) (Instruction, bool) {
	if !arithmeticOps[ins.Op] {
		return ins, false
	}
	lhs, err1 := strconv.Atoi(ins.Arg1)
	rhs, err2 := strconv.Atoi(ins.Arg2)
	if err1 != nil || err2 != nil {
		return ins, false
	}

	var value int
	switch ins.Op {
	case "ADD":
		value = lhs + rhs
	case "SUB":
		value = lhs - rhs
	case "MUL":
		value = lhs * rhs
	case "DIV":
		if rhs == 0 {
			return ins, false
		}
		value = lhs / rhs
	case "MOD":
		if rhs == 0 {
			return ins, false
		}
		value = lhs % rhs
	case "EQ":
		value = boolInt(lhs == rhs)
	case "NE":
		value = boolInt(lhs != rhs)
	case "LT":
		value = boolInt(lhs < rhs)
	case "GT":
		value = boolInt(lhs > rhs)
	case "LE":
		value = boolInt(lhs <= rhs)
	case "GE":
		value = boolInt(lhs >= rhs)
	case "AND":
		value = boolInt(lhs != 0 && rhs != 0)
	case "OR":
		value = boolInt(lhs != 0 || rhs != 0)
	default:
		return ins, false
	}

	return Instruction{Op: "ASSIGN", Arg1: strconv.Itoa(value), Result: ins.Result, Line: ins.Line}, true
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// simplifyAlgebraic rewrites identity operations (x+0, x*1, x*0, x-0) into
// a plain ASSIGN, skipping the arithmetic entirely.
func simplifyAlgebraic(ins Instruction) (Instruction, bool) {
	switch ins.Op {
	case "ADD":
		if ins.Arg2 == "0" {
			return Instruction{Op: "ASSIGN", Arg1: ins.Arg1, Result: ins.Result, Line: ins.Line}, true
		}
		if ins.Arg1 == "0" {
			return Instruction{Op: "ASSIGN", Arg1: ins.Arg2, Result: ins.Result, Line: ins.Line}, true
		}
	case "SUB":
		if ins.Arg2 == "0" {
			return Instruction{Op: "ASSIGN", Arg1: ins.Arg1, Result: ins.Result, Line: ins.Line}, true
		}
	case "MUL":
		if ins.Arg2 == "1" {
			return Instruction{Op: "ASSIGN", Arg1: ins.Arg1, Result: ins.Result, Line: ins.Line}, true
		}
		if ins.Arg1 == "1" {
			return Instruction{Op: "ASSIGN", Arg1: ins.Arg2, Result: ins.Result, Line: ins.Line}, true
		}
		if ins.Arg1 == "0" || ins.Arg2 == "0" {
			return Instruction{Op: "ASSIGN", Arg1: "0", Result: ins.Result, Line: ins.Line}, true
		}
	}
	return ins, false
}

// sideEffecting reports whether dropping this instruction (because its
// result is unused) would change program behaviour.
func sideEffecting(op string) bool {
	switch op {
	case "CALL", "PARAM", "RETURN", "IF_FALSE", "GOTO", "LABEL",
		"FUNCTION_START", "FUNCTION_END", "PARAM_DECL", "DECLARE", "INCLUDE":
		return true
	default:
		return false
	}
}

// isTemp reports whether name is a compiler-generated temporary (as
// opposed to a source-level variable), which is the only kind of storage
// safe to drop when unused: source variables may still be read by code the
// optimizer cannot see (e.g. after the function returns, via a pointer).
func isTemp(name string) bool {
	if len(name) < 2 || name[0] != 't' {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// eliminateDeadStores drops instructions that write to a temp no later
// instruction ever reads, leaving side-effecting ops (CALL, RETURN, control
// flow) untouched regardless of whether their result is read.
func eliminateDeadStores(instructions []Instruction) ([]Instruction, bool) {
	// Arg1/Arg2 are always read-operands in this instruction shape; Result
	// and Label are write/target fields, except that a "*ptr" store target
	// (see lvalueOperand) reads ptr to find where to store.
	read := make(map[string]bool)
	for _, ins := range instructions {
		if ins.Arg1 != "" {
			read[ins.Arg1] = true
		}
		if ins.Arg2 != "" {
			read[ins.Arg2] = true
		}
		if ptr, ok := strings.CutPrefix(ins.Result, "*"); ok {
			read[ptr] = true
		}
	}

	var kept []Instruction
	changed := false
	for _, ins := range instructions {
		if ins.Result != "" && isTemp(ins.Result) && !sideEffecting(ins.Op) && !read[ins.Result] {
			changed = true
			continue
		}
		kept = append(kept, ins)
	}
	return kept, changed
}
