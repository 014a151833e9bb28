/*
File    : minicc/types/types.go

Package types represents minicc's C type lattice: a base kind, a pointer
depth, and an array flag. It implements the promotion ranking and
compatibility relation the semantic analyzer's Phase 2 type checker needs.

The Kind string-constant style uses a named string type with one
constant per variant, used for type identification rather than a
numeric enum. There is no runtime value representation here, since
minicc's pipeline never executes code; only the static type lattice
matters, covering C's numeric and pointer types.
*/
package types

import (
	"strings"

	"minicc/ast"
)

// Kind identifies a C base type.
type Kind string

const (
	Void   Kind = "void"
	Char   Kind = "char"
	Short  Kind = "short"
	Int    Kind = "int"
	Long   Kind = "long"
	Float  Kind = "float"
	Double Kind = "double"
)

// rank orders numeric kinds for promotion: double > float > long > int
// (and int subsumes short/char, which never need to "win" a promotion).
var rank = map[Kind]int{
	Double: 4,
	Float:  3,
	Long:   2,
	Int:    1,
	Short:  1,
	Char:   1,
	Void:   0,
}

// Type is a fully-resolved C type: a base kind plus pointer depth. Arrays
// are tracked separately (ArrayOf) because T[] decays to T* for
// compatibility purposes but is not itself a pointer value.
type Type struct {
	Base         Kind
	PointerDepth int
	ArrayOf      bool
}

// Basic constructs an unqualified, non-pointer Type of the given kind.
func Basic(k Kind) Type { return Type{Base: k} }

// Pointer returns t with its pointer depth increased by one, e.g.
// Pointer(Basic(Char)) is char*.
func Pointer(t Type) Type {
	t.PointerDepth++
	return t
}

// IsPointer reports whether t is a pointer (after array decay).
func (t Type) IsPointer() bool { return t.PointerDepth > 0 || t.ArrayOf }

// IsNumeric reports whether t is a non-pointer, non-void arithmetic type.
func (t Type) IsNumeric() bool { return !t.IsPointer() && t.Base != Void }

// String renders t the way a C declaration would, e.g. "int", "char*",
// "double**". Used in diagnostics and in sema's Flatten symbol dumps.
func (t Type) String() string {
	var b strings.Builder
	b.WriteString(string(t.Base))
	for i := 0; i < t.PointerDepth; i++ {
		b.WriteByte('*')
	}
	if t.ArrayOf {
		b.WriteString("[]")
	}
	return b.String()
}

// FromSpecifiers resolves a declaration's type-specifier list to a base
// Kind. Qualifiers (const/volatile) and sign keywords (signed/unsigned)
// don't change the base kind minicc tracks: promotion and compatibility
// don't depend on signedness in this subset, only on the double > float >
// long > int ranking.
func FromSpecifiers(specs []ast.Specifier) Type {
	base := Int
	seen := false
	for _, spec := range specs {
		if spec.Kind != ast.TypeSpecifier {
			continue
		}
		switch spec.Name {
		case "void":
			base, seen = Void, true
		case "char":
			base, seen = Char, true
		case "short":
			base, seen = Short, true
		case "long":
			base, seen = Long, true
		case "float":
			base, seen = Float, true
		case "double":
			base, seen = Double, true
		case "int":
			if !seen {
				base = Int
			}
		}
	}
	return Type{Base: base}
}

// Promote computes the result type of a binary arithmetic expression:
// pointer arithmetic returns the pointer operand's type unchanged; among
// two numeric operands, the higher-ranked kind wins.
func Promote(a, b Type) Type {
	if a.IsPointer() {
		return a
	}
	if b.IsPointer() {
		return b
	}
	if rank[a.Base] >= rank[b.Base] {
		return a
	}
	return b
}

// Compat implements the assignment/argument compatibility relation from
// Equal types are compatible; any pair of numeric types is
// compatible; pointers are compatible when either side is void* or their
// base types are themselves compatible; an array decays to a pointer to
// its element type before the comparison.
func Compat(target, source Type) bool {
	target = decay(target)
	source = decay(source)

	if target == source {
		return true
	}
	if target.IsNumeric() && source.IsNumeric() {
		return true
	}
	if target.IsPointer() && source.IsPointer() {
		if target.Base == Void || source.Base == Void {
			return true
		}
		return Compat(Type{Base: target.Base, PointerDepth: target.PointerDepth - 1}, Type{Base: source.Base, PointerDepth: source.PointerDepth - 1})
	}
	return false
}

// decay turns an array-of-T into a pointer-to-T, leaving everything else
// unchanged.
func decay(t Type) Type {
	if t.ArrayOf {
		t.ArrayOf = false
		t.PointerDepth++
	}
	return t
}
