package isa

import (
	"math/bits"
)

const (
	memMarker      = uint32(1) << 26
	mulMarker      = uint32(0b1001) << 4
	branchMarker   = uint32(0b101) << 25
	exchangeMarker = uint32(0x12fff1) << 4
)

// makeCond places the condition code above the family specific bits.
func makeCond(cond Cond, word uint32) uint32 {
	return (cond.Code() << 28) | word
}

// bit returns 1 << pos if set.
func bit(set bool, pos int) uint32 {
	if set {
		return 1 << pos
	}
	return 0
}

// EncodeDataProcessing packs a data processing instruction, most significant bit first.
func EncodeDataProcessing(inst DataProcessing) uint32 {
	var immediate bool
	var op2 uint32

	switch operand := inst.Operand2.(type) {
	case FlexRegister:
		op2 = (uint32(operand.Shift&0xf) << 4) | operand.Reg.Field()
	case FlexImmediate:
		immediate = true
		op2 = (uint32(operand.Rotation&0xf) << 8) | uint32(operand.Imm)
	}

	return makeCond(inst.Cond, bit(immediate, 25)|
		(uint32(inst.Op&0xf)<<21)|
		bit(inst.SetCodes, 20)|
		(inst.Rn.Field()<<16)|
		(inst.Rd.Field()<<12)|
		op2)
}

// EncodeMem packs a single register transfer, most significant bit first.
func EncodeMem(inst Mem) uint32 {
	var register bool
	var field uint32

	switch offset := inst.Offset.(type) {
	case OffsetRegister:
		register = true
		field = (uint32(offset.Shift&0xf) << 4) | offset.Reg.Field()
	case OffsetImmediate:
		field = uint32(offset.Imm) & 0xfff
	}

	up := inst.Offset != nil && inst.Offset.Direction() == DIR_UP

	return makeCond(inst.Cond, memMarker|
		bit(register, 25)|
		bit(inst.Index != INDEX_POST, 24)|
		bit(up, 23)|
		bit(inst.Op.Byte(), 22)|
		bit(inst.Index == INDEX_PRE, 21)|
		bit(inst.Op.Load(), 20)|
		(inst.Rn.Field()<<16)|
		(inst.Rd.Field()<<12)|
		field)
}

// EncodeMul packs a multiply, most significant bit first. The accumulate bit
// is never set.
func EncodeMul(inst Mul) uint32 {
	return makeCond(inst.Cond, bit(inst.SetCodes, 20)|
		(inst.Rd.Field()<<16)|
		(inst.Rn.Field()<<12)|
		(inst.Rs.Field()<<8)|
		mulMarker|
		inst.Rm.Field())
}

// EncodeBranch packs a branch, most significant bit first.
func EncodeBranch(inst Branch) uint32 {
	return makeCond(inst.Cond, branchMarker|
		bit(inst.Link, 24)|
		(uint32(inst.Offset)&0xffffff))
}

// EncodeBranchExchange packs a branch-and-exchange, most significant bit first.
func EncodeBranchExchange(inst BranchExchange) uint32 {
	return makeCond(inst.Cond, exchangeMarker|inst.Rm.Field())
}

// Encode packs an instruction and returns it in target byte order: the
// conventional word with its bytes reversed. An instruction with a missing
// operand variant is ErrInstructionInvalid.
func Encode(inst Instruction) (word uint32, err error) {
	switch inst := inst.(type) {
	case DataProcessing:
		if inst.Operand2 == nil {
			err = ErrInstructionInvalid
			return
		}
		word = EncodeDataProcessing(inst)
	case Mem:
		if inst.Offset == nil {
			err = ErrInstructionInvalid
			return
		}
		word = EncodeMem(inst)
	case Mul:
		word = EncodeMul(inst)
	case Branch:
		word = EncodeBranch(inst)
	case BranchExchange:
		word = EncodeBranchExchange(inst)
	default:
		err = ErrInstructionInvalid
		return
	}

	word = bits.ReverseBytes32(word)
	return
}
