package isa

// Shift is the 4-bit shift field of a register operand.
type Shift uint8

// Rotation is the 4-bit rotation field of an immediate operand.
type Rotation uint8

// Imm8 is the 8-bit immediate of a data processing operand.
type Imm8 uint8

// Imm12 is the 12-bit immediate of a memory transfer offset.
type Imm12 uint16

// MakeShift validates a 4-bit shift.
func MakeShift(value uint64) (shift Shift, err error) {
	if value > 0xf {
		err = ErrFieldRange{Field: "shift", Bits: 4, Value: value}
		return
	}
	shift = Shift(value)
	return
}

// MakeRotation validates a 4-bit rotation.
func MakeRotation(value uint64) (rot Rotation, err error) {
	if value > 0xf {
		err = ErrFieldRange{Field: "rotation", Bits: 4, Value: value}
		return
	}
	rot = Rotation(value)
	return
}

// MakeImm8 validates an 8-bit immediate.
func MakeImm8(value uint64) (imm Imm8, err error) {
	if value > 0xff {
		err = ErrFieldRange{Field: "immediate", Bits: 8, Value: value}
		return
	}
	imm = Imm8(value)
	return
}

// MakeImm12 validates a 12-bit immediate.
func MakeImm12(value uint64) (imm Imm12, err error) {
	if value > 0xfff {
		err = ErrFieldRange{Field: "offset", Bits: 12, Value: value}
		return
	}
	imm = Imm12(value)
	return
}

// TruncImm12 keeps the low 12 bits of a 16-bit offset.
func TruncImm12(value uint16) Imm12 {
	return Imm12(value & 0xfff)
}
