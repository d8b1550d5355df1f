package disasm

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// decodeOne decodes the instruction at code position i within ctx. It
// never returns an error: an unrecognized opcode produces an
// "unknown (N)" instruction of size 1 so the caller's scan always
// makes forward progress.
func decodeOne(ctx *model.CodeContext, i int) Instruction {
	code := ctx.Code
	data := ctx.Data
	op := Opcode(codeWord(code, i))

	if op > VM_DEBUGGER {
		return Instruction{Address: i, Mnemonic: fmt.Sprintf("unknown (%d)", op), Size: 1}
	}

	switch {
	case op == VM_NOP:
		return Instruction{Address: i, Mnemonic: "nop", Size: 1}
	case op == VM_NF:
		return Instruction{Address: i, Mnemonic: "nf", Comment: "!", Size: 1}
	case op == VM_RET:
		return Instruction{Address: i, Mnemonic: "ret", Size: 1}
	case op == VM_EXTRY:
		return Instruction{Address: i, Mnemonic: "extry", Size: 1}
	case op == VM_REGMEMBER:
		return Instruction{Address: i, Mnemonic: "regmember", Size: 1}
	case op == VM_DEBUGGER:
		return Instruction{Address: i, Mnemonic: "debugger", Size: 1}

	case op == VM_CONST:
		return decodeConst(code, data, i)
	case op == VM_CCL:
		return decodeCCL(code, i)

	case op == VM_CP:
		return decodeTwoReg(code, i, "cp")
	case op == VM_CEQ:
		return decodeTwoReg(code, i, "ceq")
	case op == VM_CDEQ:
		return decodeTwoReg(code, i, "cdeq")
	case op == VM_CLT:
		return decodeTwoReg(code, i, "clt")
	case op == VM_CGT:
		return decodeTwoReg(code, i, "cgt")
	case op == VM_CHKINS:
		return decodeTwoReg(code, i, "chkins")
	case op == VM_SETP:
		return decodeTwoReg(code, i, "setp")
	case op == VM_GETP:
		return decodeTwoReg(code, i, "getp")
	case op == VM_CHGTHIS:
		return decodeTwoReg(code, i, "chgthis")
	case op == VM_ADDCI:
		return decodeTwoReg(code, i, "addci")

	case op == VM_TT:
		return decodeOneReg(code, i, "tt")
	case op == VM_TF:
		return decodeOneReg(code, i, "tf")
	case op == VM_SETF:
		return decodeOneReg(code, i, "setf")
	case op == VM_SETNF:
		return decodeOneReg(code, i, "setnf")
	case op == VM_LNOT:
		return decodeOneReg(code, i, "lnot")
	case op == VM_BNOT:
		return decodeOneReg(code, i, "bnot")
	case op == VM_ASC:
		return decodeOneReg(code, i, "asc")
	case op == VM_CHR:
		return decodeOneReg(code, i, "chr")
	case op == VM_NUM:
		return decodeOneReg(code, i, "num")
	case op == VM_CHS:
		return decodeOneReg(code, i, "chs")
	case op == VM_CL:
		return decodeOneReg(code, i, "cl")
	case op == VM_INV:
		return decodeOneReg(code, i, "inv")
	case op == VM_CHKINV:
		return decodeOneReg(code, i, "chkinv")
	case op == VM_TYPEOF:
		return decodeOneReg(code, i, "typeof")
	case op == VM_EVAL:
		return decodeOneReg(code, i, "eval")
	case op == VM_EEXP:
		return decodeOneReg(code, i, "eexp")
	case op == VM_INT:
		return decodeOneReg(code, i, "int")
	case op == VM_REAL:
		return decodeOneReg(code, i, "real")
	case op == VM_STR:
		return decodeOneReg(code, i, "str")
	case op == VM_OCTET:
		return decodeOneReg(code, i, "octet")
	case op == VM_SRV:
		return decodeOneReg(code, i, "srv")
	case op == VM_THROW:
		return decodeOneReg(code, i, "throw")
	case op == VM_GLOBAL:
		return decodeOneReg(code, i, "global")

	case op == VM_JF:
		return decodeJump(code, i, "jf")
	case op == VM_JNF:
		return decodeJump(code, i, "jnf")
	case op == VM_JMP:
		return decodeJump(code, i, "jmp")
	case op == VM_ENTRY:
		return decodeEntry(code, i)

	case op >= VM_INC && op <= VM_INC+3:
		return decodeCounter(code, data, i, op, VM_INC, "inc")
	case op >= VM_DEC && op <= VM_DEC+3:
		return decodeCounter(code, data, i, op, VM_DEC, "dec")

	case op == VM_CALL, op == VM_CALLD, op == VM_CALLI, op == VM_NEW:
		return decodeCall(code, data, i, op)

	case op == VM_GPD || op == VM_GPDS:
		return decodeGPD(code, data, i, op)
	case op == VM_SPD || op == VM_SPDE || op == VM_SPDEH || op == VM_SPDS:
		return decodeSPD(code, data, i, op)
	case op == VM_GPI || op == VM_GPIS:
		return decodeGPI(code, i, op)
	case op == VM_SPI || op == VM_SPIE || op == VM_SPIS:
		return decodeSPI(code, i, op)
	case op == VM_DELD || op == VM_TYPEOFD:
		return decodeDelD(code, data, i, op)
	case op == VM_DELI || op == VM_TYPEOFI:
		return decodeDelI(code, i, op)
	}

	if fam, ok := arithFamilyFor(op); ok {
		return decodeArith(code, data, i, op, fam)
	}

	return Instruction{Address: i, Mnemonic: fmt.Sprintf("unknown (%d)", op), Size: 1}
}

func arithFamilyFor(op Opcode) (arithFamily, bool) {
	for _, fam := range arithFamilies {
		if op >= fam.base && op <= fam.base+3 {
			return fam, true
		}
	}
	return arithFamily{}, false
}

func decodeOneReg(code []uint16, i int, mnemonic string) Instruction {
	r1 := codeWord(code, i+1)
	return Instruction{Address: i, Mnemonic: mnemonic, Operands: reg(r1), Size: 2}
}

func decodeTwoReg(code []uint16, i int, mnemonic string) Instruction {
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("%s, %s", reg(r1), reg(r2)),
		Size:     3,
	}
}

func decodeConst(code []uint16, data []model.DataValue, i int) Instruction {
	r1 := codeWord(code, i+1)
	r2 := codeWord(code, i+2)
	return Instruction{
		Address:  i,
		Mnemonic: "const",
		Operands: fmt.Sprintf("%s, *%d", reg(r1), r2),
		Comment:  dataComment(data, r2),
		Size:     3,
	}
}

func decodeCCL(code []uint16, i int) Instruction {
	r1 := codeWord(code, i+1)
	count := codeWord(code, i+2)
	end := int(r1) + int(count) - 1
	return Instruction{
		Address:  i,
		Mnemonic: "ccl",
		Operands: fmt.Sprintf("%%%d-%%%d", r1, end),
		Size:     3,
	}
}

func decodeJump(code []uint16, i int, mnemonic string) Instruction {
	operand := codeWord(code, i+1)
	addr := int(operand) + i
	return Instruction{
		Address:  i,
		Mnemonic: mnemonic,
		Operands: fmt.Sprintf("0x%09X", addr),
		Size:     2,
	}
}

func decodeEntry(code []uint16, i int) Instruction {
	operand := codeWord(code, i+1)
	addr := int(operand) + i
	r1 := codeWord(code, i+2)
	return Instruction{
		Address:  i,
		Mnemonic: "entry",
		Operands: fmt.Sprintf("%09d, %s", addr, reg(r1)),
		Size:     3,
	}
}
