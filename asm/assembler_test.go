package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/a32asm/isa"
)

func assemble(t *testing.T, asm *Assembler, program []string) (prog *Program) {
	assert := assert.New(t)

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))
	assert.Equal(0, len(prog.Labels))
	assert.NoError(prog.Err())
}

func TestAssemblerLoop(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"loop:",
		"add r0,r0,r1",
		"b loop",
	}

	prog := assemble(t, asm, program)

	assert.Equal(map[string]uint32{"loop": 0}, prog.Labels)
	assert.Equal(2, len(prog.Lines))

	assert.Equal(uint32(0x00), prog.Lines[0].Addr)
	assert.Equal(uint32(0x01_00_80_e0), prog.Lines[0].Word)

	assert.Equal(3, prog.Lines[1].LineNo)
	assert.Equal(uint32(INSTRUCTION_STRIDE), prog.Lines[1].Addr)
	assert.Equal("b loop", prog.Lines[1].Text)
	assert.Equal("b -32", prog.Lines[1].Resolved)
	assert.Equal(isa.Branch{Cond: isa.COND_AL, Offset: -32}, prog.Lines[1].Inst)
	assert.Equal(uint32(0xe0_ff_ff_ea), prog.Lines[1].Word)
	assert.Equal("b loop - e0ffffea", prog.Lines[1].String())
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"start:",
		"b end",
		"mov r0, #1",
		"middle:",
		"also:",
		"bleq start",
		"bne middle",
		"end:",
		"bx lr",
	}

	prog := assemble(t, asm, program)

	assert.Equal(map[string]uint32{"start": 0x00, "middle": 0x40, "also": 0x40, "end": 0x80}, prog.Labels)
	assert.Equal(5, len(prog.Lines))

	resolved := []string{"b 128", "mov r0, #1", "bleq -64", "bne -32", "bx lr"}
	for n, line := range prog.Lines {
		assert.Equal(resolved[n], line.Resolved)
	}

	assert.Equal(uint32(0x80_00_00_ea), prog.Lines[0].Word)
	assert.Equal(uint32(0xe0_ff_ff_1a), prog.Lines[3].Word)

	assert.Equal([]Symbol{
		{"start", 0x00},
		{"also", 0x40},
		{"middle", 0x40},
		{"end", 0x80},
	}, prog.Symbols())
}

func TestAssemblerStride(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Stride = 4
	asm := &Assembler{Config: cfg}

	prog := assemble(t, asm, []string{"top:", "mov r0, #0", "b top"})

	assert.Equal("b -4", prog.Lines[1].Resolved)
	assert.Equal(uint32(0xfc_ff_ff_ea), prog.Lines[1].Word)
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"; header",
		"",
		"start: ; entry",
		"   mov r0, #1 ; one",
		"\tb start",
	}

	prog := assemble(t, asm, program)

	assert.Equal(2, len(prog.Lines))
	assert.Equal("   mov r0, #1 ; one", prog.Lines[0].Text)
	assert.Equal(4, prog.Lines[0].LineNo)
	assert.Equal("   mov r0, #1 ; one - 0100a0e3", prog.Lines[0].String())
	assert.Equal("\tb start - e0ffffea", prog.Lines[1].String())
	assert.Equal("b -32", prog.Lines[1].Resolved)

	crlf := assemble(t, &Assembler{}, []string{"  mov r0, #1\r", "bx lr \r"})
	assert.Equal("  mov r0, #1", crlf.Lines[0].Text)
	assert.Equal("bx lr ", crlf.Lines[1].Text)
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"mov r0, #$(3 * 4)",
		"end:",
		"mov r1, $(end // 32)",
		"str r1, [sp, $(ADDR + LINENO)]",
	}

	prog := assemble(t, asm, program)

	assert.Equal(3, len(prog.Lines))
	assert.Equal("mov r0, #12", prog.Lines[0].Resolved)
	assert.Equal("mov r1, 1", prog.Lines[1].Resolved)
	assert.Equal("str r1, [sp, 68]", prog.Lines[2].Resolved)
}

func TestAssemblerPolicy(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mov r0, #1",
		"frob r1",
		"add r0, r0, r1",
		"mov r2, $(\"text\")",
	}

	asm := &Assembler{}
	prog := assemble(t, asm, program)
	assert.Equal(2, len(prog.Lines))
	assert.Equal(uint32(0x40), prog.Lines[1].Addr)
	assert.Error(prog.Err())
	assert.Equal(2, len(prog.Skipped.Errors))

	var se *ErrSyntax
	assert.True(errors.As(prog.Skipped.Errors[0], &se))
	assert.Equal(2, se.LineNo)
	assert.ErrorIs(prog.Skipped.Errors[0], ErrBadMnemonic)

	var pe ErrParseExpression
	assert.True(errors.As(prog.Skipped.Errors[1], &pe))

	cfg := DefaultConfig()
	cfg.Policy = POLICY_ABORT
	asm = &Assembler{Config: cfg}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrBadMnemonic)
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)
	assert.Equal("frob r1", se.Line)
	assert.Equal(1, len(prog.Lines))
}

func TestAssemblerDeterministic(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"loop:",
		"ldr r1, [sp, 4]",
		"subs r1, r1, #1",
		"mul r2, r1, r1",
		"str r2, [sp, 4]",
		"bne loop",
		"bx lr",
	}

	first := assemble(t, &Assembler{}, program)
	second := assemble(t, &Assembler{}, program)

	assert.Equal(first.Lines, second.Lines)
	assert.Equal(first.Binary(), second.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	// Fatal under either policy.
	table := [](struct {
		prog string
		line int
		kind error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate},
		{"mov r0, #1\n:\n", 2, ErrLabelInvalid},
		{"two words:\n", 1, ErrLabelInvalid},
		{"b nowhere", 1, ErrLabelMissing("nowhere")},
		{"here:\nmov r0, #1\nbl there\n", 3, ErrLabelMissing("there")},
		{"b", 1, ErrLabelMissing("")},
		{"blne 64", 1, ErrLabelMissing("64")},
	}

	for _, policy := range []Policy{POLICY_SKIP, POLICY_ABORT} {
		cfg := DefaultConfig()
		cfg.Policy = policy
		asm := &Assembler{Config: cfg}

		for _, entry := range table {
			_, err := asm.Parse(strings.NewReader(entry.prog))
			var se *ErrSyntax
			assert.NotNil(err, entry.prog)
			if err != nil {
				assert.True(errors.As(err, &se), entry.prog)
				assert.Equal(entry.line, se.LineNo, entry.prog)
				assert.ErrorIs(err, entry.kind, entry.prog)
			}
		}
	}
}

func TestAssemblerConfigInvalid(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Stride = 0
	asm := &Assembler{Config: cfg}

	prog, err := asm.Parse(strings.NewReader("mov r0, #1"))
	assert.ErrorIs(err, ErrConfigStride)
	assert.Nil(prog)

	// A partial config does not silently narrow the register file.
	asm = &Assembler{Config: Config{Stride: 4, RegisterPrefixes: "r"}}
	prog, err = asm.Parse(strings.NewReader("add r1, r2, r3"))
	assert.ErrorIs(err, ErrConfigRegister)
	assert.Nil(prog)
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	asm := &Assembler{Verbose: true, Logger: logger}

	assemble(t, asm, []string{"mov r0, #1", "nop", "bx lr"})

	entries := hook.AllEntries()
	assert.Equal(3, len(entries))
	assert.Equal(logrus.InfoLevel, entries[0].Level)
	assert.Equal("mov r0, #1", entries[0].Message)
	assert.Equal("0100a0e3", entries[0].Data["word"])
	assert.Equal(logrus.WarnLevel, entries[1].Level)
	assert.Equal(2, entries[1].Data["line"])
}
