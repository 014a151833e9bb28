/*
File    : minicc/sema/analyze_test.go
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc/diag"
	"minicc/lexer"
	"minicc/parser"
)

func analyzeSource(t *testing.T, src string) (*SymbolTable, []diag.Diagnostic) {
	t.Helper()
	toks := lexer.New(src).ConsumeTokens()
	program, parseDiags := parser.Parse(toks)
	require.Empty(t, parseDiags, "source must parse cleanly: %q", src)
	return Analyze(program, src)
}

func hasMessage(diags []diag.Diagnostic, substr string) bool {
	for _, d := range diags {
		if contains(d.Message, substr) {
			return true
		}
	}
	return false
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}

func TestAnalyze_CleanProgramHasNoErrors(t *testing.T) {
	_, diags := analyzeSource(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int x = add(1, 2);
			return x;
		}
	`)
	assert.False(t, diag.HasErrors(diags), "%+v", diags)
}

func TestAnalyze_UndefinedIdentifier(t *testing.T) {
	_, diags := analyzeSource(t, `int main() { return y; }`)
	assert.True(t, hasMessage(diags, "undefined identifier"))
}

func TestAnalyze_UndefinedFunction(t *testing.T) {
	_, diags := analyzeSource(t, `int main() { return doesnotexist(1); }`)
	assert.True(t, hasMessage(diags, "undefined function"))
}

func TestAnalyze_UsedBeforeInitialization(t *testing.T) {
	_, diags := analyzeSource(t, `int main() { int x; return x; }`)
	assert.True(t, hasMessage(diags, "used before initialization"))
}

func TestAnalyze_UnusedVariableWarning(t *testing.T) {
	_, diags := analyzeSource(t, `int main() { int x = 1; return 0; }`)
	assert.True(t, hasMessage(diags, "unused variable"))
}

func TestAnalyze_RedeclarationInSameScope(t *testing.T) {
	_, diags := analyzeSource(t, `int main() { int x = 1; int x = 2; return x; }`)
	assert.True(t, hasMessage(diags, "redeclaration"))
}

func TestAnalyze_MissingMain(t *testing.T) {
	_, diags := analyzeSource(t, `int helper() { return 1; }`)
	assert.True(t, hasMessage(diags, "no main"))
}

func TestAnalyze_CallArityMismatch(t *testing.T) {
	_, diags := analyzeSource(t, `
		int add(int a, int b) { return a + b; }
		int main() { return add(1); }
	`)
	assert.True(t, hasMessage(diags, "called with 1 arguments, but expected 2"))
}

func TestAnalyze_IncompatibleAssignment(t *testing.T) {
	_, diags := analyzeSource(t, `
		int main() {
			int *p;
			int x = 1;
			p = x;
			return 0;
		}
	`)
	assert.True(t, diag.HasErrors(diags))
}

func TestAnalyze_BuiltinCallsResolve(t *testing.T) {
	_, diags := analyzeSource(t, `
		int main() {
			printf("hello %d\n", 1);
			return 0;
		}
	`)
	assert.False(t, diag.HasErrors(diags), "%+v", diags)
}

func TestAnalyze_ParametersCountAsInitialized(t *testing.T) {
	_, diags := analyzeSource(t, `int identity(int x) { return x; }`)
	assert.False(t, hasMessage(diags, "used before initialization"))
	assert.False(t, hasMessage(diags, "unused variable"))
}

func TestFlatten_ReportsGlobalAndFunctionScopedNames(t *testing.T) {
	table, diags := analyzeSource(t, `
		int add(int a, int b) {
			int sum = a + b;
			return sum;
		}
		int main() { return add(1, 2); }
	`)
	assert.False(t, diag.HasErrors(diags))

	flat := table.Flatten()
	addInfo, ok := flat["add"]
	require.True(t, ok, "function symbols flatten to a bare name")
	assert.Equal(t, "int", addInfo.Type)

	found := false
	for name, info := range flat {
		if name != "add" && name != "main" && info.Type == "int" && info.Initialized {
			found = true
		}
	}
	assert.True(t, found, "local variables should appear under their enclosing scope")
}
