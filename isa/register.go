package isa

import (
	"fmt"
)

// Register is an architectural register id.
type Register uint8

const (
	REG_R0 = Register(0)
	REG_FP = Register(11)
	REG_IP = Register(12)
	REG_SP = Register(13)
	REG_LR = Register(14)
	REG_PC = Register(15)

	// REG_LIMIT is the highest id of the architectural register file.
	REG_LIMIT = 15
	// REG_LIMIT_WIDE is the highest id accepted by the wide register dialect.
	REG_LIMIT_WIDE = 31
)

// MakeRegister validates id against limit.
func MakeRegister(id uint64, limit int) (reg Register, err error) {
	if limit > REG_LIMIT_WIDE {
		limit = REG_LIMIT_WIDE
	}
	if id > uint64(limit) {
		err = ErrRegisterRange
		return
	}
	reg = Register(id)
	return
}

// Field returns the register id as placed in a 4-bit field.
//
// Ids above 15 are only accepted by the wide dialect; their high bit does not
// survive encoding.
func (reg Register) Field() uint32 {
	return uint32(reg) & 0xf
}

func (reg Register) String() string {
	switch reg {
	case REG_SP:
		return "sp"
	case REG_LR:
		return "lr"
	case REG_PC:
		return "pc"
	}
	return fmt.Sprintf("r%d", uint8(reg))
}
