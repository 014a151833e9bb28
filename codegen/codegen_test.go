/*
File    : minicc/codegen/codegen_test.go
*/
package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc/lexer"
	"minicc/parser"
)

func generateSource(t *testing.T, src string) Result {
	t.Helper()
	toks := lexer.New(src).ConsumeTokens()
	program, parseDiags := parser.Parse(toks)
	require.Empty(t, parseDiags, "source must parse cleanly: %q", src)
	result, diags := Generate(program)
	require.Empty(t, diags, "%+v", diags)
	return result
}

func opsOf(instructions []Instruction) []string {
	ops := make([]string, len(instructions))
	for i, ins := range instructions {
		ops[i] = ins.Op
	}
	return ops
}

func TestGenerate_SimpleFunctionBracketing(t *testing.T) {
	result := generateSource(t, `int main() { return 0; }`)
	ops := opsOf(result.RawTAC)
	assert.Equal(t, "LABEL", ops[0])
	assert.Equal(t, "FUNCTION_START", ops[1])
	assert.Equal(t, "RETURN", ops[len(ops)-2])
	assert.Equal(t, "FUNCTION_END", ops[len(ops)-1])
}

func TestGenerate_BinaryExpressionUsesFreshTemp(t *testing.T) {
	result := generateSource(t, `int main() { int x = 1 + 2; return x; }`)
	var addIns *Instruction
	for i := range result.RawTAC {
		if result.RawTAC[i].Op == "ADD" {
			addIns = &result.RawTAC[i]
		}
	}
	require.NotNil(t, addIns)
	assert.Equal(t, "t0", addIns.Result)
}

func TestGenerate_PreIncrementReturnsUpdatedValue(t *testing.T) {
	result := generateSource(t, `int main() { int x = 1; ++x; return x; }`)
	ops := opsOf(result.RawTAC)
	assert.Contains(t, ops, "ADD")
	for _, ins := range result.RawTAC {
		if ins.Op == "ADD" {
			assert.Equal(t, "x", ins.Arg1)
			assert.Equal(t, "1", ins.Arg2)
			assert.Equal(t, "x", ins.Result, "pre-increment updates x in place")
		}
	}
}

func TestGenerate_PostIncrementSavesOriginalFirst(t *testing.T) {
	result := generateSource(t, `int main() { int x = 1; int y = x++; return y; }`)
	var sawAssignBeforeAdd, sawAdd bool
	for _, ins := range result.RawTAC {
		if ins.Op == "ASSIGN" && ins.Arg1 == "x" {
			sawAssignBeforeAdd = true
		}
		if ins.Op == "ADD" {
			sawAdd = true
			assert.True(t, sawAssignBeforeAdd, "post-increment must save the original value before mutating it")
		}
	}
	assert.True(t, sawAdd)
}

func TestGenerate_IfElseBranchesToDistinctLabels(t *testing.T) {
	result := generateSource(t, `
		int main() {
			int x = 1;
			if (x) { x = 2; } else { x = 3; }
			return x;
		}
	`)
	ops := opsOf(result.RawTAC)
	assert.Contains(t, ops, "IF_FALSE")
	assert.Contains(t, ops, "GOTO")
	var elseTarget, endTarget string
	for _, ins := range result.RawTAC {
		if ins.Op == "IF_FALSE" {
			elseTarget = ins.Result
		}
		if ins.Op == "GOTO" {
			endTarget = ins.Result
		}
	}
	assert.Equal(t, "IF_ELSE0", elseTarget)
	assert.Equal(t, "IF_END0", endTarget)
	assert.NotEqual(t, elseTarget, endTarget)
}

func TestGenerate_WhileLoopBreakTargetsEndLabel(t *testing.T) {
	result := generateSource(t, `
		int main() {
			int x = 0;
			while (1) {
				x = x + 1;
				if (x) { break; }
			}
			return x;
		}
	`)
	var gotoTargets []string
	for _, ins := range result.RawTAC {
		if ins.Op == "GOTO" {
			gotoTargets = append(gotoTargets, ins.Result)
		}
	}
	require.NotEmpty(t, gotoTargets)
	assert.Equal(t, "WHILE_END0", gotoTargets[0], "break jumps to the loop's end label")
	assert.Equal(t, "WHILE_START0", gotoTargets[len(gotoTargets)-1], "the back-edge jumps to the loop's start label")
}

func TestGenerate_ForLoopRunsUpdateBeforeBackEdge(t *testing.T) {
	result := generateSource(t, `
		int main() {
			int i;
			int sum = 0;
			for (i = 0; i < 10; i = i + 1) {
				sum = sum + i;
			}
			return sum;
		}
	`)
	assert.Contains(t, opsOf(result.RawTAC), "LT")
	continueIndex, updateIndex, backEdgeIndex := -1, -1, -1
	for i, ins := range result.RawTAC {
		switch {
		case ins.Op == "LABEL" && ins.Label == "FOR_CONTINUE0":
			continueIndex = i
		case ins.Op == "ASSIGN" && ins.Result == "i":
			updateIndex = i
		case ins.Op == "GOTO" && ins.Result == "FOR_START0":
			backEdgeIndex = i
		}
	}
	require.NotEqual(t, -1, backEdgeIndex)
	assert.Less(t, continueIndex, updateIndex, "the update runs after the continue label")
	assert.Less(t, updateIndex, backEdgeIndex, "the update runs before the back-edge")
}

func TestGenerate_ForLoopUsesNumberedConstructLabels(t *testing.T) {
	result := generateSource(t, `
		int main() {
			for (int i = 0; i < 3; i = i + 1) { }
			return 0;
		}
	`)
	var labels []string
	var ifFalseTarget, backEdgeTarget string
	for _, ins := range result.RawTAC {
		if ins.Op == "LABEL" {
			labels = append(labels, ins.Label)
		}
		if ins.Op == "IF_FALSE" {
			ifFalseTarget = ins.Result
		}
		if ins.Op == "GOTO" {
			backEdgeTarget = ins.Result
		}
	}
	assert.Contains(t, labels, "FOR_START0")
	assert.Contains(t, labels, "FOR_CONTINUE0")
	assert.Contains(t, labels, "FOR_END0")
	assert.Equal(t, "FOR_END0", ifFalseTarget)
	assert.Equal(t, "FOR_START0", backEdgeTarget)
}

func TestGenerate_CallLowersParamsBeforeCall(t *testing.T) {
	result := generateSource(t, `
		int add(int a, int b) { return a + b; }
		int main() { return add(1, 2); }
	`)
	var sawParam, sawCallAfterParam bool
	for _, ins := range result.RawTAC {
		if ins.Op == "PARAM" {
			sawParam = true
		}
		if ins.Op == "CALL" && sawParam {
			sawCallAfterParam = true
		}
	}
	assert.True(t, sawCallAfterParam)
}

func TestGenerate_AssignThroughPointerDereferenceEmitsIndirectStore(t *testing.T) {
	result := generateSource(t, `
		int main() {
			int x = 1;
			int *p = &x;
			*p = 5;
			return x;
		}
	`)
	var store *Instruction
	for i := range result.RawTAC {
		if result.RawTAC[i].Op == "ASSIGN" && result.RawTAC[i].Result == "*p" {
			store = &result.RawTAC[i]
		}
	}
	require.NotNil(t, store, "expected an ASSIGN targeting \"*p\", got %+v", result.RawTAC)
	assert.Equal(t, "5", store.Arg1)

	asm := result.RawAssembly
	assert.Contains(t, asm, "movq p, %rax\n")
	assert.Contains(t, asm, "movq $5, (%rax)\n")
}

func TestGenerate_CompoundAssignThroughPointerDereferenceLoadsBeforeStoring(t *testing.T) {
	result := generateSource(t, `
		int main() {
			int x = 1;
			int *p = &x;
			*p += 2;
			return x;
		}
	`)
	var sawDerefLoad, sawIndirectStore bool
	var derefIndex, storeIndex int
	for i, ins := range result.RawTAC {
		if ins.Op == "DEREF" {
			sawDerefLoad = true
			derefIndex = i
		}
		if ins.Op == "ASSIGN" && ins.Result == "*p" {
			sawIndirectStore = true
			storeIndex = i
		}
	}
	assert.True(t, sawDerefLoad, "expected a DEREF loading *p's current value")
	assert.True(t, sawIndirectStore, "expected an ASSIGN storing back through p")
	assert.Less(t, derefIndex, storeIndex, "the load must precede the store")
}

func TestOptimize_ConstantFoldingCollapsesArithmetic(t *testing.T) {
	raw := []Instruction{
		{Op: "ADD", Arg1: "2", Arg2: "3", Result: "t1"},
		{Op: "RETURN", Arg1: "t1"},
	}
	optimized, _ := Optimize(raw)
	require.Len(t, optimized, 2)
	assert.Equal(t, "ASSIGN", optimized[0].Op)
	assert.Equal(t, "5", optimized[0].Arg1)
}

func TestOptimize_AlgebraicIdentityDropsAddZero(t *testing.T) {
	raw := []Instruction{
		{Op: "ADD", Arg1: "x", Arg2: "0", Result: "t1"},
		{Op: "RETURN", Arg1: "t1"},
	}
	optimized, _ := Optimize(raw)
	require.Len(t, optimized, 2)
	assert.Equal(t, "ASSIGN", optimized[0].Op)
	assert.Equal(t, "x", optimized[0].Arg1)
}

func TestOptimize_DeadStoreEliminationDropsUnusedTemp(t *testing.T) {
	raw := []Instruction{
		{Op: "ADD", Arg1: "1", Arg2: "2", Result: "t1"},
		{Op: "RETURN", Arg1: "0"},
	}
	optimized, _ := Optimize(raw)
	for _, ins := range optimized {
		assert.NotEqual(t, "t1", ins.Result, "t1 is never read and should be eliminated")
	}
}

func TestOptimize_NeverExceedsMaxPasses(t *testing.T) {
	raw := []Instruction{{Op: "ADD", Arg1: "1", Arg2: "1", Result: "t1"}}
	_, passes := Optimize(raw)
	assert.LessOrEqual(t, passes, maxOptimizationPasses)
}

func TestEmitAssembly_OmitsDataSectionWithoutStrings(t *testing.T) {
	result := generateSource(t, `int main() { return 0; }`)
	assert.Contains(t, result.RawAssembly, ".section .text")
	assert.NotContains(t, result.RawAssembly, ".section .data")
}

func TestEmitAssembly_EmitsDataSectionAndStartStubForStrings(t *testing.T) {
	result := generateSource(t, `
		int main() { printf("hi"); return 0; }
	`)
	assert.Contains(t, result.RawAssembly, ".section .data")
	assert.Contains(t, result.RawAssembly, `.string "hi"`)
	assert.Contains(t, result.RawAssembly, "_start:")
	assert.Contains(t, result.RawAssembly, "call main")
	require.Len(t, result.StringLiterals, 1)
	for _, v := range result.StringLiterals {
		assert.Equal(t, `"hi"`, v)
	}
}

func TestEncodeIllustrative_RecognizesMnemonics(t *testing.T) {
	code := EncodeIllustrative("\tmovq $1, t1\n\tret\n")
	assert.Equal(t, []byte{0x89, 0xC3}, code)
}
