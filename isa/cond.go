package isa

import (
	"strings"
)

// Cond is a 4-bit condition code. Every encoded word carries one in [31:28].
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_EQ = Cond(0x0) // eq
	COND_NE = Cond(0x1) // ne
	COND_CS = Cond(0x2) // cs
	COND_CC = Cond(0x3) // cc
	COND_MI = Cond(0x4) // mi
	COND_PL = Cond(0x5) // pl
	COND_VS = Cond(0x6) // vs
	COND_VC = Cond(0x7) // vc
	COND_HI = Cond(0x8) // hi
	COND_LS = Cond(0x9) // ls
	COND_GE = Cond(0xa) // ge
	COND_LT = Cond(0xb) // lt
	COND_GT = Cond(0xc) // gt
	COND_LE = Cond(0xd) // le
	COND_AL = Cond(0xe) // al
	COND_NV = Cond(0xf) // nv
)

// condMap maps lower case suffix spellings to condition codes.
var condMap = map[string]Cond{
	"hs": COND_CS,
	"lo": COND_CC,
}

func init() {
	for cond := range COND_NV + 1 {
		condMap[cond.String()] = cond
	}
}

// ParseCond looks up a condition suffix, ignoring case.
func ParseCond(suffix string) (cond Cond, err error) {
	cond, ok := condMap[strings.ToLower(suffix)]
	if !ok {
		err = ErrCondUnknown
	}
	return
}

// Code returns the 4-bit field value.
func (cond Cond) Code() uint32 {
	return uint32(cond) & 0xf
}
