package asm

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ezrec/a32asm/isa"
)

// regAlias maps register alias names to register ids.
var regAlias = map[string]isa.Register{
	"fp": isa.REG_FP,
	"ip": isa.REG_IP,
	"sp": isa.REG_SP,
	"lr": isa.REG_LR,
	"pc": isa.REG_PC,
}

// splitOpcode splits a line into its opcode token and operand text.
func splitOpcode(line string) (token, rest string) {
	line = strings.TrimSpace(line)

	n := strings.IndexFunc(line, unicode.IsSpace)
	if n < 0 {
		return line, ""
	}

	return line[:n], strings.TrimSpace(line[n:])
}

// splitOperands splits operand text on commas.
func splitOperands(rest string) (words []string) {
	if len(rest) == 0 {
		return
	}

	for _, word := range strings.Split(rest, ",") {
		words = append(words, strings.TrimSpace(word))
	}

	return
}

// Register parses a register name.
func (p *Parser) Register(word string) (reg isa.Register, err error) {
	lower := strings.ToLower(word)

	reg, ok := regAlias[lower]
	if ok {
		return
	}

	if len(lower) < 2 || !strings.ContainsRune(strings.ToLower(p.Config.RegisterPrefixes), rune(lower[0])) {
		err = &ErrParse{Kind: ErrBadRegister, Token: word}
		return
	}

	id, err := strconv.ParseUint(lower[1:], 10, 8)
	if err != nil {
		err = &ErrParse{Kind: ErrBadRegister, Token: word, Err: err}
		return
	}

	reg, err = isa.MakeRegister(id, p.Config.RegisterLimit)
	if err != nil {
		err = &ErrParse{Kind: ErrBadRegister, Token: word, Err: err}
		return
	}

	return
}

// digits strips the optional literal prefix from a word.
func (p *Parser) digits(word string) (digits string, marked bool) {
	if len(p.Config.LiteralPrefix) == 0 {
		return word, false
	}
	return strings.CutPrefix(word, p.Config.LiteralPrefix)
}

// literal returns true if the word is shaped like a numeric literal.
func (p *Parser) literal(word string) bool {
	digits, marked := p.digits(word)
	if marked {
		return true
	}
	if len(digits) == 0 {
		return false
	}
	c := digits[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+'
}

// number parses an unsigned decimal literal of at most bitSize bits.
func (p *Parser) number(word string, bitSize int) (value uint64, err error) {
	digits, _ := p.digits(word)

	value, err = strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		err = &ErrParse{Kind: ErrBadNumber, Token: word, Err: err}
	}

	return
}

// FlexOperand parses a register or an 8-bit immediate.
func (p *Parser) FlexOperand(word string) (op isa.FlexOperand, err error) {
	reg, err := p.Register(word)
	if err == nil {
		op = isa.FlexRegister{Reg: reg}
		return
	}

	if !p.literal(word) {
		err = &ErrParse{Kind: ErrBadFlexOperand, Token: word}
		return
	}

	value, err := p.number(word, 64)
	if err != nil {
		return
	}

	imm, err := isa.MakeImm8(value)
	if err != nil {
		err = &ErrParse{Kind: ErrBadNumber, Token: word, Err: err}
		return
	}

	op = isa.FlexImmediate{Imm: imm}
	return
}

// Offset parses the bracketed address operands of a memory transfer, that
// is everything after the transfer register.
//
// The base register must be well formed, but the base field is always the
// stack pointer. Only immediate, upward offsets are produced.
func (p *Parser) Offset(words []string) (base isa.Register, index isa.IndexMode, offset isa.Offset, err error) {
	if len(words) == 0 {
		err = &ErrParse{Kind: ErrRanOutOfOperands}
		return
	}

	words = append([]string(nil), words...)

	last := len(words) - 1
	writeback := strings.HasSuffix(words[last], "!")
	words[last] = strings.TrimSpace(strings.TrimSuffix(words[last], "!"))

	word := strings.TrimSpace(strings.TrimPrefix(words[0], "["))
	closed := strings.HasSuffix(word, "]")
	word = strings.TrimSpace(strings.TrimSuffix(word, "]"))

	_, err = p.Register(word)
	if err != nil {
		return
	}

	rest := words[1:]

	switch {
	case writeback:
		index = isa.INDEX_PRE
	case closed && len(rest) > 0:
		index = isa.INDEX_POST
	default:
		index = isa.INDEX_OFFSET
	}

	var value uint16
	for _, word := range rest {
		word = strings.TrimSpace(strings.ReplaceAll(word, "]", ""))
		digits, _ := p.digits(word)
		v64, perr := strconv.ParseUint(digits, 10, 16)
		if perr == nil {
			value = uint16(v64)
			break
		}
	}

	base = isa.REG_SP
	offset = isa.OffsetImmediate{Imm: isa.TruncImm12(value), Dir: isa.DIR_UP}

	return
}
