package asm

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ezrec/a32asm/isa"
)

// Mnemonic is an instruction spelling and the family opcode it selects.
type Mnemonic struct {
	Name   string
	Family isa.Family
	Code   int // isa.DataOp, isa.MemOp, or the branch link bit.
}

// Settable returns true if the mnemonic accepts the 's' set-flags suffix.
func (mn Mnemonic) Settable() bool {
	return mn.Family == isa.FAMILY_DATA || mn.Family == isa.FAMILY_MUL
}

// suffix resolves the text following the mnemonic in an opcode token.
func (mn Mnemonic) suffix(rest string) (cond isa.Cond, setCodes bool, ok bool) {
	if len(rest) == 0 {
		return isa.COND_AL, false, true
	}

	cond, err := isa.ParseCond(rest)
	if err == nil {
		return cond, false, true
	}

	if !mn.Settable() {
		return
	}

	// Both 'addseq' and 'addeqs' set the flags.
	var tail string
	switch {
	case strings.HasPrefix(rest, "s"):
		tail = rest[1:]
	case strings.HasSuffix(rest, "s"):
		tail = rest[:len(rest)-1]
	default:
		return
	}

	if len(tail) == 0 {
		return isa.COND_AL, true, true
	}

	cond, err = isa.ParseCond(tail)
	if err != nil {
		return
	}

	return cond, true, true
}

// mnemonicTable is in match order: by family, then longest spelling first.
var mnemonicTable []Mnemonic

func init() {
	for op := range isa.DATA_OP_MVN + 1 {
		mnemonicTable = append(mnemonicTable, Mnemonic{op.String(), isa.FAMILY_DATA, int(op)})
	}
	for op := range isa.MEM_OP_LDRB + 1 {
		mnemonicTable = append(mnemonicTable, Mnemonic{op.String(), isa.FAMILY_MEM, int(op)})
	}
	mnemonicTable = append(mnemonicTable,
		Mnemonic{"mul", isa.FAMILY_MUL, 0},
		Mnemonic{"bx", isa.FAMILY_BRANCH_EXCHANGE, 0},
		Mnemonic{"b", isa.FAMILY_BRANCH, 0},
		Mnemonic{"bl", isa.FAMILY_BRANCH, 1},
	)

	slices.SortStableFunc(mnemonicTable, func(a, b Mnemonic) int {
		return cmp.Or(
			cmp.Compare(a.Family, b.Family),
			cmp.Compare(len(b.Name), len(a.Name)),
		)
	})
}

// Opcode is a classified opcode token.
type Opcode struct {
	Mnemonic
	Cond     isa.Cond
	SetCodes bool
}

// Classify splits an opcode token into its mnemonic and condition suffix.
//
// Candidates are tried in table order, and the first one whose remaining
// text is a valid suffix wins. That makes 'blt' a 'b' with an 'lt' condition,
// and 'strb' never a 'str'.
func Classify(token string) (op Opcode, err error) {
	lower := strings.ToLower(token)

	matched := false
	for _, mn := range mnemonicTable {
		rest, ok := strings.CutPrefix(lower, mn.Name)
		if !ok {
			continue
		}
		matched = true

		cond, setCodes, ok := mn.suffix(rest)
		if !ok {
			continue
		}

		op = Opcode{Mnemonic: mn, Cond: cond, SetCodes: setCodes}
		return
	}

	if matched {
		err = &ErrParse{Kind: ErrBadCond, Token: token, Err: isa.ErrCondUnknown}
	} else {
		err = &ErrParse{Kind: ErrBadMnemonic, Token: token}
	}

	return
}
