package disasm

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// decodeCounter decodes one of the inc/dec four-way variant families:
// base (%R), +1 "pd" (%R1, %R2.*R3 with const comment), +2 "pi"
// (%R1, %R2.%R3), +3 "p" (%R1, %R2).
func decodeCounter(code []uint16, data []model.DataValue, i int, op, base Opcode, mnemonic string) Instruction {
	switch op - base {
	case 0:
		r1 := codeWord(code, i+1)
		return Instruction{Address: i, Mnemonic: mnemonic, Operands: reg(r1), Size: 2}
	case 1:
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		r3 := codeWord(code, i+3)
		return Instruction{
			Address:  i,
			Mnemonic: mnemonic + "pd",
			Operands: fmt.Sprintf("%s, %s.*%d", reg(r1), reg(r2), r3),
			Comment:  dataComment(data, r3),
			Size:     4,
		}
	case 2:
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		r3 := codeWord(code, i+3)
		return Instruction{
			Address:  i,
			Mnemonic: mnemonic + "pi",
			Operands: fmt.Sprintf("%s, %s.%s", reg(r1), reg(r2), reg(r3)),
			Size:     4,
		}
	default: // 3, "p"
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		return Instruction{
			Address:  i,
			Mnemonic: mnemonic + "p",
			Operands: fmt.Sprintf("%s, %s", reg(r1), reg(r2)),
			Size:     3,
		}
	}
}

// decodeArith decodes one of the fourteen binary arithmetic/logical
// families, each sharing the counter families' four-way variant shape
// but with one extra register and a larger base size.
func decodeArith(code []uint16, data []model.DataValue, i int, op Opcode, fam arithFamily) Instruction {
	switch op - fam.base {
	case 0:
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		return Instruction{
			Address:  i,
			Mnemonic: fam.mnemonic,
			Operands: fmt.Sprintf("%s, %s", reg(r1), reg(r2)),
			Size:     3,
		}
	case 1:
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		r3 := codeWord(code, i+3)
		r4 := codeWord(code, i+4)
		return Instruction{
			Address:  i,
			Mnemonic: fam.mnemonic + "pd",
			Operands: fmt.Sprintf("%s, %s.*%d, %s", reg(r1), reg(r2), r3, reg(r4)),
			Comment:  dataComment(data, r3),
			Size:     5,
		}
	case 2:
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		r3 := codeWord(code, i+3)
		r4 := codeWord(code, i+4)
		return Instruction{
			Address:  i,
			Mnemonic: fam.mnemonic + "pi",
			Operands: fmt.Sprintf("%s, %s.%s, %s", reg(r1), reg(r2), reg(r3), reg(r4)),
			Size:     5,
		}
	default: // 3, "p"
		r1 := codeWord(code, i+1)
		r2 := codeWord(code, i+2)
		r3 := codeWord(code, i+3)
		return Instruction{
			Address:  i,
			Mnemonic: fam.mnemonic + "p",
			Operands: fmt.Sprintf("%s, %s, %s", reg(r1), reg(r2), reg(r3)),
			Size:     4,
		}
	}
}
