package disasm

import (
	"strconv"
	"strings"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// decodeCall decodes the variable-length call family: call, calld,
// calli, new. The fixed header picks the call kind and its target
// register(s); the trailing argument-count word then selects one of
// three encodings — omitted args ("..."), an expanded arg list (each
// entry tagged normal/expand/unnamed-expand), or a plain fixed-count
// arg list.
func decodeCall(code []uint16, data []model.DataValue, i int, op Opcode) Instruction {
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)

	var mnemonic, head string
	var st int
	var ddataReg uint16
	hasDDataComment := false

	switch op {
	case VM_CALL:
		mnemonic = "call"
		head = reg(r1) + ", " + reg(r2) + "("
		st = 4
	case VM_CALLD:
		mnemonic = "calld"
		r3 := codeWord(code, i+3)
		head = reg(r1) + ", " + reg(r2) + ".*" + strconv.Itoa(int(r3)) + "("
		st = 5
		ddataReg = r3
		hasDDataComment = true
	case VM_CALLI:
		mnemonic = "calli"
		r3 := codeWord(code, i+3)
		head = reg(r1) + ", " + reg(r2) + "." + reg(r3) + "("
		st = 5
	default: // VM_NEW
		mnemonic = "new"
		head = reg(r1) + ", " + reg(r2) + "("
		st = 4
	}

	var b strings.Builder
	b.WriteString(head)

	numWord := codeWord(code, i+st-1)
	num := int(int16(numWord))
	var size int

	switch num {
	case -1: // omit args
		size = st
		b.WriteString("...")
	case -2: // expand args
		st++
		count := int(int16(codeWord(code, i+st-1)))
		size = st + count*2
		for j := 0; j < count; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			argType := FuncArgType(codeWord(code, i+st+j*2))
			argReg := codeWord(code, i+st+j*2+1)
			switch argType {
			case FuncArgExpand:
				b.WriteString(reg(argReg) + "*")
			case FuncArgUnnamedExpand:
				b.WriteString("*")
			default:
				b.WriteString(reg(argReg))
			}
		}
	default: // normal operation, num is a non-negative count
		size = st + num
		for c := 0; c < num; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			argReg := codeWord(code, i+c+st)
			b.WriteString(reg(argReg))
		}
	}

	b.WriteString(")")

	comment := ""
	if hasDDataComment {
		comment = dataComment(data, ddataReg)
	}

	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: b.String(),
		Comment:  comment,
		Size:     size,
	}
}
