package isa

import (
	"fmt"
)

// Family is an instruction encoding format.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_DATA            = Family(0) // data
	FAMILY_MEM             = Family(1) // mem
	FAMILY_MUL             = Family(2) // mul
	FAMILY_BRANCH_EXCHANGE = Family(3) // bx
	FAMILY_BRANCH          = Family(4) // branch
)

// DataOp is a data processing opcode, [24:21] of the word.
type DataOp int

//go:generate go tool stringer -linecomment -type=DataOp
const (
	DATA_OP_AND = DataOp(0x0) // and
	DATA_OP_EOR = DataOp(0x1) // eor
	DATA_OP_SUB = DataOp(0x2) // sub
	DATA_OP_RSB = DataOp(0x3) // rsb
	DATA_OP_ADD = DataOp(0x4) // add
	DATA_OP_ADC = DataOp(0x5) // adc
	DATA_OP_SBC = DataOp(0x6) // sbc
	DATA_OP_RSC = DataOp(0x7) // rsc
	DATA_OP_TST = DataOp(0x8) // tst
	DATA_OP_TEQ = DataOp(0x9) // teq
	DATA_OP_CMP = DataOp(0xa) // cmp
	DATA_OP_CMN = DataOp(0xb) // cmn
	DATA_OP_ORR = DataOp(0xc) // orr
	DATA_OP_MOV = DataOp(0xd) // mov
	DATA_OP_BIC = DataOp(0xe) // bic
	DATA_OP_MVN = DataOp(0xf) // mvn
)

// Compare returns true for the ops that only set condition codes.
func (op DataOp) Compare() bool {
	return op >= DATA_OP_TST && op <= DATA_OP_CMN
}

// Move returns true for the ops that ignore Rn.
func (op DataOp) Move() bool {
	return op == DATA_OP_MOV || op == DATA_OP_MVN
}

// MemOp is a single register transfer opcode.
type MemOp int

//go:generate go tool stringer -linecomment -type=MemOp
const (
	MEM_OP_STR  = MemOp(0) // str
	MEM_OP_STRB = MemOp(1) // strb
	MEM_OP_LDR  = MemOp(2) // ldr
	MEM_OP_LDRB = MemOp(3) // ldrb
)

// Load returns true for loads.
func (op MemOp) Load() bool {
	return op == MEM_OP_LDR || op == MEM_OP_LDRB
}

// Byte returns true for byte sized transfers.
func (op MemOp) Byte() bool {
	return op == MEM_OP_STRB || op == MEM_OP_LDRB
}

// Instruction is one of DataProcessing, Mem, Mul, Branch or BranchExchange.
type Instruction interface {
	fmt.Stringer
	Family() Family
	Condition() Cond
	instruction()
}

// DataProcessing is an ALU operation.
type DataProcessing struct {
	Cond     Cond
	Op       DataOp
	SetCodes bool
	Rd       Register
	Rn       Register
	Operand2 FlexOperand
}

// Mem is a single register load or store.
type Mem struct {
	Cond   Cond
	Op     MemOp
	Index  IndexMode
	Rn     Register // Base register.
	Rd     Register
	Offset Offset
}

// Mul is a 32-bit multiply.
type Mul struct {
	Cond     Cond
	SetCodes bool
	Rd       Register
	Rn       Register // Accumulator slot, [15:12].
	Rs       Register // Multiplier, [11:8].
	Rm       Register // Multiplicand, [3:0].
}

// Branch is a relative jump, optionally saving the return address.
type Branch struct {
	Cond   Cond
	Link   bool
	Offset int32 // Relative to the branch, already resolved.
}

// BranchExchange jumps to the address held in a register.
type BranchExchange struct {
	Cond Cond
	Rm   Register
}

func (DataProcessing) instruction() {}
func (Mem) instruction()            {}
func (Mul) instruction()            {}
func (Branch) instruction()         {}
func (BranchExchange) instruction() {}

func (DataProcessing) Family() Family { return FAMILY_DATA }
func (Mem) Family() Family            { return FAMILY_MEM }
func (Mul) Family() Family            { return FAMILY_MUL }
func (Branch) Family() Family         { return FAMILY_BRANCH }
func (BranchExchange) Family() Family { return FAMILY_BRANCH_EXCHANGE }

func (inst DataProcessing) Condition() Cond { return inst.Cond }
func (inst Mem) Condition() Cond            { return inst.Cond }
func (inst Mul) Condition() Cond            { return inst.Cond }
func (inst Branch) Condition() Cond         { return inst.Cond }
func (inst BranchExchange) Condition() Cond { return inst.Cond }

// suffix renders the condition and set flags suffix of a mnemonic.
func suffix(cond Cond, setCodes bool) (str string) {
	if cond != COND_AL {
		str = cond.String()
	}
	if setCodes {
		str += "s"
	}
	return
}

func (inst DataProcessing) String() string {
	mnemonic := inst.Op.String() + suffix(inst.Cond, inst.SetCodes && !inst.Op.Compare())
	switch {
	case inst.Op.Move():
		return fmt.Sprintf("%v %v, %v", mnemonic, inst.Rd, inst.Operand2)
	case inst.Op.Compare():
		return fmt.Sprintf("%v %v, %v", mnemonic, inst.Rn, inst.Operand2)
	}
	return fmt.Sprintf("%v %v, %v, %v", mnemonic, inst.Rd, inst.Rn, inst.Operand2)
}

func (inst Mem) String() string {
	mnemonic := inst.Op.String() + suffix(inst.Cond, false)
	switch inst.Index {
	case INDEX_POST:
		return fmt.Sprintf("%v %v, [%v], %v", mnemonic, inst.Rd, inst.Rn, inst.Offset)
	case INDEX_PRE:
		return fmt.Sprintf("%v %v, [%v, %v]!", mnemonic, inst.Rd, inst.Rn, inst.Offset)
	}
	return fmt.Sprintf("%v %v, [%v, %v]", mnemonic, inst.Rd, inst.Rn, inst.Offset)
}

func (inst Mul) String() string {
	return fmt.Sprintf("mul%v %v, %v, %v, %v", suffix(inst.Cond, inst.SetCodes), inst.Rd, inst.Rn, inst.Rm, inst.Rs)
}

func (inst Branch) String() string {
	mnemonic := "b"
	if inst.Link {
		mnemonic = "bl"
	}
	return fmt.Sprintf("%v%v %+d", mnemonic, suffix(inst.Cond, false), inst.Offset)
}

func (inst BranchExchange) String() string {
	return fmt.Sprintf("bx%v %v", suffix(inst.Cond, false), inst.Rm)
}
