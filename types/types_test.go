package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minicc/ast"
)

func TestFromSpecifiers(t *testing.T) {
	tests := []struct {
		specs []ast.Specifier
		want  Kind
	}{
		{[]ast.Specifier{{Kind: ast.TypeSpecifier, Name: "int"}}, Int},
		{[]ast.Specifier{{Kind: ast.TypeSpecifier, Name: "double"}}, Double},
		{[]ast.Specifier{{Kind: ast.TypeQualifier, Name: "const"}, {Kind: ast.TypeSpecifier, Name: "char"}}, Char},
		{[]ast.Specifier{{Kind: ast.TypeSpecifier, Name: "unsigned"}}, Int},
	}
	for _, tc := range tests {
		got := FromSpecifiers(tc.specs)
		assert.Equal(t, tc.want, got.Base, "specs=%+v", tc.specs)
	}
}

func TestPromote(t *testing.T) {
	assert.Equal(t, Double, Promote(Basic(Int), Basic(Double)).Base)
	assert.Equal(t, Long, Promote(Basic(Long), Basic(Int)).Base)
	ptr := Pointer(Basic(Int))
	assert.True(t, Promote(ptr, Basic(Int)).IsPointer())
}

func TestCompat(t *testing.T) {
	assert.True(t, Compat(Basic(Int), Basic(Double)))
	assert.True(t, Compat(Basic(Int), Basic(Int)))
	assert.True(t, Compat(Pointer(Basic(Void)), Pointer(Basic(Char))))
	assert.True(t, Compat(Pointer(Basic(Char)), Type{Base: Char, ArrayOf: true}))
	assert.False(t, Compat(Basic(Int), Pointer(Basic(Char))))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", Basic(Int).String())
	assert.Equal(t, "char*", Pointer(Basic(Char)).String())
}
