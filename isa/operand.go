package isa

import (
	"fmt"
)

// FlexOperand is the second operand of a data processing instruction:
// either FlexRegister or FlexImmediate.
type FlexOperand interface {
	fmt.Stringer
	flexOperand()
}

// FlexRegister is a register operand with a shift.
type FlexRegister struct {
	Reg   Register
	Shift Shift
}

// FlexImmediate is an 8-bit immediate with a rotation.
type FlexImmediate struct {
	Imm      Imm8
	Rotation Rotation
}

func (FlexRegister) flexOperand()  {}
func (FlexImmediate) flexOperand() {}

func (op FlexRegister) String() string {
	if op.Shift == 0 {
		return op.Reg.String()
	}
	return fmt.Sprintf("%v<<%d", op.Reg, op.Shift)
}

func (op FlexImmediate) String() string {
	if op.Rotation == 0 {
		return fmt.Sprintf("#%d", op.Imm)
	}
	return fmt.Sprintf("#%d>>%d", op.Imm, op.Rotation)
}

// Direction selects whether a memory offset is added or subtracted.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_DOWN = Direction(0) // -
	DIR_UP   = Direction(1) // +
)

// Offset is the offset of a memory transfer: either OffsetRegister or
// OffsetImmediate.
type Offset interface {
	fmt.Stringer
	Direction() Direction
	offset()
}

// OffsetRegister is a shifted register offset.
type OffsetRegister struct {
	Reg   Register
	Shift Shift
	Dir   Direction
}

// OffsetImmediate is a 12-bit immediate offset.
type OffsetImmediate struct {
	Imm Imm12
	Dir Direction
}

func (OffsetRegister) offset()  {}
func (OffsetImmediate) offset() {}

func (off OffsetRegister) Direction() Direction  { return off.Dir }
func (off OffsetImmediate) Direction() Direction { return off.Dir }

func (off OffsetRegister) String() string {
	if off.Shift == 0 {
		return fmt.Sprintf("%v%v", off.Dir, off.Reg)
	}
	return fmt.Sprintf("%v%v<<%d", off.Dir, off.Reg, off.Shift)
}

func (off OffsetImmediate) String() string {
	return fmt.Sprintf("#%v%d", off.Dir, off.Imm)
}

// IndexMode selects pre/post indexing of a memory transfer.
type IndexMode int

//go:generate go tool stringer -linecomment -type=IndexMode
const (
	INDEX_POST   = IndexMode(0) // post
	INDEX_OFFSET = IndexMode(1) // offset
	INDEX_PRE    = IndexMode(2) // pre
)
