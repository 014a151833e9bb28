/*
File    : minicc/codegen/machinecode.go

opcodeTable maps a handful of x86-64 mnemonics to one representative
opcode byte each, for illustration only (for two-byte opcodes such as
imulq, je and setl it holds the second byte; operands, prefixes and ModRM
bytes are never encoded). EncodeIllustrative looks up each assembly line's
leading mnemonic and appends the matching byte; a mnemonic missing from the
table contributes no byte. The result is not a loadable
object file: minicc has no linker, no relocation, no section layout, it
exists purely so a reader can see which byte a mnemonic corresponds to.
*/
package codegen

import "strings"

var opcodeTable = map[string]byte{
	"movq":  0x89,
	"addq":  0x01,
	"subq":  0x29,
	"imulq": 0xAF,
	"idivq": 0xF7,
	"negq":  0xF7,
	"notq":  0xF7,
	"andq":  0x21,
	"orq":   0x09,
	"cmpq":  0x39,
	"jmp":   0xE9,
	"je":    0x84,
	"jne":   0x85,
	"call":  0xE8,
	"ret":   0xC3,
	"pushq": 0x50,
	"popq":  0x58,
	"leaq":  0x8D,
	"cqto":  0x99,
	"sete":  0x94,
	"setne": 0x95,
	"setl":  0x9C,
	"setg":  0x9F,
	"setle": 0x9E,
	"setge": 0x9D,
}

// EncodeIllustrative scans assembly text line by line and returns one byte
// per recognized mnemonic, in source order. Lines with no mnemonic (blank
// lines, labels, comments) contribute nothing.
func EncodeIllustrative(assembly string) []byte {
	var code []byte
	for _, line := range strings.Split(assembly, "\n") {
		mnemonic := firstWord(line)
		if mnemonic == "" {
			continue
		}
		if b, ok := opcodeTable[mnemonic]; ok {
			code = append(code, b)
		}
	}
	return code
}

func firstWord(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ".") {
		return ""
	}
	if strings.HasSuffix(trimmed, ":") {
		return ""
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
