/*
File    : minicc/pipeline/pipeline_test.go
*/
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc/diag"
)

func TestLex_TokenizesCleanSource(t *testing.T) {
	result := Lex(`int main() { return 0; }`)
	assert.Empty(t, result.Diagnostics)
	assert.NotEmpty(t, result.Tokens)
}

func TestParse_ReturnsProgramForCleanSource(t *testing.T) {
	result := Parse(`int main() { return 0; }`)
	require.NotNil(t, result.Program)
	assert.Empty(t, result.Diagnostics)
}

func TestParse_CombinesLexAndParseDiagnosticsInOrder(t *testing.T) {
	result := Parse("int main() { return 'unterminated; }")
	assert.True(t, diag.HasErrors(result.Diagnostics))
	require.GreaterOrEqual(t, len(result.Diagnostics), 2, "expected a lexer diagnostic followed by parser diagnostics")
	assert.Equal(t, "unterminated character literal", result.Diagnostics[0].Message, "lexer diagnostics come first")
}

func TestAnalyze_RunsSemaOnTopOfParse(t *testing.T) {
	result := Analyze(`int main() { return y; }`)
	assert.True(t, hasSubstring(result.Diagnostics, "undefined identifier"))
}

func TestAnalyze_CleanProgramProducesSymbolTable(t *testing.T) {
	result := Analyze(`int main() { return 0; }`)
	require.NotNil(t, result.Symbols)
	assert.Empty(t, result.Diagnostics)
}

func TestGenerate_StopsAtAnalysisErrorsWithoutLowering(t *testing.T) {
	result := Generate(`int main() { return y; }`)
	assert.True(t, diag.HasErrors(result.Diagnostics))
	assert.Nil(t, result.Code.RawTAC)
}

func TestGenerate_ProducesTACForCleanProgram(t *testing.T) {
	result := Generate(`int main() { return 0; }`)
	assert.Empty(t, result.Diagnostics)
	assert.NotEmpty(t, result.Code.RawTAC)
	assert.NotEmpty(t, result.Code.RawAssembly)
}

func hasSubstring(diags []diag.Diagnostic, substr string) bool {
	for _, d := range diags {
		if len(d.Message) >= len(substr) {
			for i := 0; i+len(substr) <= len(d.Message); i++ {
				if d.Message[i:i+len(substr)] == substr {
					return true
				}
			}
		}
	}
	return false
}
