package disasm

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// decodeGPD decodes gpd/gpds: %R1, %R2.*R3 — get property by data-slot
// name, with a resolved-name comment.
func decodeGPD(code []uint16, data []model.DataValue, i int, op Opcode) Instruction {
	mnemonic := "gpd"
	if op == VM_GPDS {
		mnemonic = "gpds"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s, %s.*%d", reg(r1), reg(r2), r3),
		Comment:  dataComment(data, r3),
		Size:     4,
	}
}

// decodeSPD decodes the spd/spde/spdeh/spds family: %R1.*R2, %R3 — set
// property by data-slot name. The resolved-name comment annotates the
// second operand word, not the third, unlike gpd/gpds.
func decodeSPD(code []uint16, data []model.DataValue, i int, op Opcode) Instruction {
	var mnemonic string
	switch op {
	case VM_SPD:
		mnemonic = "spd"
	case VM_SPDE:
		mnemonic = "spde"
	case VM_SPDEH:
		mnemonic = "spdeh"
	default:
		mnemonic = "spds"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s.*%d, %s", reg(r1), r2, reg(r3)),
		Comment:  dataComment(data, r2),
		Size:     4,
	}
}

// decodeGPI decodes gpi/gpis: %R1, %R2.%R3 — get property by register-
// held name, no constant comment.
func decodeGPI(code []uint16, i int, op Opcode) Instruction {
	mnemonic := "gpi"
	if op == VM_GPIS {
		mnemonic = "gpis"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s, %s.%s", reg(r1), reg(r2), reg(r3)),
		Size:     4,
	}
}

// decodeSPI decodes the spi/spie/spis family: %R1.%R2, %R3 — set
// property by register-held name.
func decodeSPI(code []uint16, i int, op Opcode) Instruction {
	var mnemonic string
	switch op {
	case VM_SPI:
		mnemonic = "spi"
	case VM_SPIE:
		mnemonic = "spie"
	default:
		mnemonic = "spis"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s.%s, %s", reg(r1), reg(r2), reg(r3)),
		Size:     4,
	}
}

// decodeDelD decodes deld/typeofd: %R1, %R2.*R3 — delete or query the
// type of a data-slot-named property.
func decodeDelD(code []uint16, data []model.DataValue, i int, op Opcode) Instruction {
	mnemonic := "deld"
	if op == VM_TYPEOFD {
		mnemonic = "typeofd"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s, %s.*%d", reg(r1), reg(r2), r3),
		Comment:  dataComment(data, r3),
		Size:     4,
	}
}

// decodeDelI decodes deli/typeofi: %R1, %R2.%R3 — delete or query the
// type of a register-held-name property.
func decodeDelI(code []uint16, i int, op Opcode) Instruction {
	mnemonic := "deli"
	if op == VM_TYPEOFI {
		mnemonic = "typeofi"
	}
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	r3 := codeWord(code, i+3)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s, %s.%s", reg(r1), reg(r2), reg(r3)),
		Size:     4,
	}
}
