package disasm

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// Instruction is one decoded bytecode instruction: its address in the
// owning context's code array, a mnemonic, a formatted operand list,
// an optional comment (usually a resolved constant), and the word
// count it occupies.
type Instruction struct {
	Address  int
	Mnemonic string
	Operands string
	Comment  string
	Size     int
}

// Disassemble decodes the code words of ctx in [start, end) into a
// linear instruction list. end is clamped to the code array length; a
// negative end means "through the end of the array". Unknown
// opcodes emit a single placeholder instruction of size 1 and never
// stop the walk.
func Disassemble(ctx *model.CodeContext, start, end int) []Instruction {
	code := ctx.Code
	if end < 0 || end > len(code) {
		end = len(code)
	}
	if start < 0 {
		start = 0
	}

	var out []Instruction
	i := start
	for i < end {
		ins := decodeOne(ctx, i)
		out = append(out, ins)
		if ins.Size < 1 {
			ins.Size = 1
		}
		i += ins.Size
	}
	return out
}

// reg renders a raw operand word as a register operand. Per the
// loader's resolved addressing convention, operand words are already
// scaled register indices — no further division is applied.
func reg(word uint16) string {
	return fmt.Sprintf("%%%d", word)
}

// codeWord reads code[i], returning 0 for an out-of-range index so a
// truncated instruction at the tail of a code array still decodes to
// something rather than panicking.
func codeWord(code []uint16, i int) uint16 {
	if i < 0 || i >= len(code) {
		return 0
	}
	return code[i]
}

// dataComment looks up a context's data array at idx and renders the
// "*idx = <value>" annotation a const-referencing instruction attaches
// to its operand list. Out-of-range indices render as "null", matching
// the null fallback for any other unresolved data reference.
func dataComment(data []model.DataValue, idx uint16) string {
	return fmt.Sprintf("*%d = %s", idx, dataValueText(data, idx))
}

func dataValueText(data []model.DataValue, idx uint16) string {
	i := int(idx)
	if i < 0 || i >= len(data) {
		return "null"
	}
	return data[i].String()
}
