package asm

import (
	"strconv"

	"github.com/ezrec/a32asm/isa"
)

// Parser turns a single instruction line into an isa.Instruction.
type Parser struct {
	Config Config
}

// NewParser creates a parser for a dialect.
func NewParser(cfg Config) *Parser {
	return &Parser{Config: cfg}
}

// need checks that at least count operands are present.
func need(words []string, count int) (err error) {
	if len(words) < count {
		err = &ErrParse{Kind: ErrRanOutOfOperands}
	}
	return
}

// registers parses each word as a register.
func (p *Parser) registers(words ...string) (regs []isa.Register, err error) {
	regs = make([]isa.Register, len(words))
	for n, word := range words {
		regs[n], err = p.Register(word)
		if err != nil {
			return
		}
	}
	return
}

// ParseLine parses a fully numeric instruction line. Branch targets must
// already be relative byte offsets.
func (p *Parser) ParseLine(line string) (inst isa.Instruction, err error) {
	token, rest := splitOpcode(line)
	if len(token) == 0 {
		err = &ErrParse{Kind: ErrBadMnemonic, Token: line}
		return
	}

	op, err := Classify(token)
	if err != nil {
		return
	}

	words := splitOperands(rest)

	switch op.Family {
	case isa.FAMILY_DATA:
		inst, err = p.parseData(op, words)
	case isa.FAMILY_MEM:
		inst, err = p.parseMem(op, words)
	case isa.FAMILY_MUL:
		inst, err = p.parseMul(op, words)
	case isa.FAMILY_BRANCH_EXCHANGE:
		inst, err = p.parseBranchExchange(op, words)
	case isa.FAMILY_BRANCH:
		inst, err = p.parseBranch(op, words)
	default:
		err = &ErrParse{Kind: ErrBadMnemonic, Token: token}
	}

	return
}

// parseData handles the three operand shapes of data processing:
//
//	mov rd, op2
//	cmp rn, op2
//	add rd, rn, op2
func (p *Parser) parseData(op Opcode, words []string) (inst isa.Instruction, err error) {
	dop := isa.DataOp(op.Code)

	dp := isa.DataProcessing{
		Cond:     op.Cond,
		Op:       dop,
		SetCodes: op.SetCodes || dop.Compare(),
	}

	count := 3
	if dop.Move() || dop.Compare() {
		count = 2
	}

	err = need(words, count)
	if err != nil {
		return
	}

	switch {
	case dop.Move():
		dp.Rd, err = p.Register(words[0])
	case dop.Compare():
		dp.Rn, err = p.Register(words[0])
	default:
		dp.Rd, err = p.Register(words[0])
		if err == nil {
			dp.Rn, err = p.Register(words[1])
		}
	}
	if err != nil {
		return
	}

	dp.Operand2, err = p.FlexOperand(words[count-1])
	if err != nil {
		return
	}

	inst = dp
	return
}

// parseMem handles 'str rd, [base, offset]'.
func (p *Parser) parseMem(op Opcode, words []string) (inst isa.Instruction, err error) {
	err = need(words, 2)
	if err != nil {
		return
	}

	rd, err := p.Register(words[0])
	if err != nil {
		return
	}

	base, index, offset, err := p.Offset(words[1:])
	if err != nil {
		return
	}

	inst = isa.Mem{
		Cond:   op.Cond,
		Op:     isa.MemOp(op.Code),
		Index:  index,
		Rn:     base,
		Rd:     rd,
		Offset: offset,
	}
	return
}

// parseMul handles both multiply forms. The three operand form leaves the
// accumulator slot at r0:
//
//	mul rd, multiplicand, multiplier
//	mul rd, accumulator, multiplicand, multiplier
func (p *Parser) parseMul(op Opcode, words []string) (inst isa.Instruction, err error) {
	err = need(words, 3)
	if err != nil {
		return
	}

	if len(words) > 4 {
		words = words[:4]
	}

	regs, err := p.registers(words...)
	if err != nil {
		return
	}

	mul := isa.Mul{
		Cond:     op.Cond,
		SetCodes: op.SetCodes,
		Rd:       regs[0],
	}

	if len(regs) == 4 {
		mul.Rn, mul.Rm, mul.Rs = regs[1], regs[2], regs[3]
	} else {
		mul.Rn, mul.Rm, mul.Rs = isa.REG_R0, regs[1], regs[2]
	}

	inst = mul
	return
}

// parseBranch handles 'b offset' where offset is a signed decimal.
func (p *Parser) parseBranch(op Opcode, words []string) (inst isa.Instruction, err error) {
	err = need(words, 1)
	if err != nil {
		return
	}

	offset, err := strconv.ParseInt(words[0], 10, 32)
	if err != nil {
		err = &ErrParse{Kind: ErrBadNumber, Token: words[0], Err: err}
		return
	}

	inst = isa.Branch{
		Cond:   op.Cond,
		Link:   op.Code == 1,
		Offset: int32(offset),
	}
	return
}

// parseBranchExchange handles 'bx rm'.
func (p *Parser) parseBranchExchange(op Opcode, words []string) (inst isa.Instruction, err error) {
	err = need(words, 1)
	if err != nil {
		return
	}

	rm, err := p.Register(words[0])
	if err != nil {
		return
	}

	inst = isa.BranchExchange{Cond: op.Cond, Rm: rm}
	return
}
