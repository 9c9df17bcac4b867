// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/a32asm/isa"
)

// source is an instruction line recorded by the first pass.
type source struct {
	LineNo int
	Addr   uint32
	Text   string // Source text as written.
	Code   string // Text without its comment.
}

// Assembler is a two pass assembler for the A32 subset.
type Assembler struct {
	Verbose bool               // If set, logs every assembled line.
	Logger  logrus.FieldLogger // Log destination, the logrus standard logger if nil.
	Config  Config             // Dialect settings, DefaultConfig() if zero.

	Label map[string]uint32 // Map of labels to byte addresses.
}

// logger returns the log destination.
func (asm *Assembler) logger() logrus.FieldLogger {
	if asm.Logger == nil {
		return logrus.StandardLogger()
	}
	return asm.Logger
}

// config returns the effective settings.
func (asm *Assembler) config() Config {
	if asm.Config == (Config{}) {
		return DefaultConfig()
	}
	return asm.Config
}

// stripComment removes a ';' comment and surrounding space.
func stripComment(text string) string {
	code, _, _ := strings.Cut(text, ";")
	return strings.TrimSpace(code)
}

// collect is the first pass. It records label addresses and returns the
// instruction lines with their addresses.
func (asm *Assembler) collect(input io.Reader, stride uint32) (lines []source, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var addr uint32

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		code := stripComment(text)
		if len(code) == 0 {
			continue
		}

		if strings.HasSuffix(code, ":") {
			label := strings.TrimSuffix(code, ":")
			if len(label) == 0 || strings.IndexFunc(label, unicode.IsSpace) >= 0 {
				err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrLabelInvalid}
				return
			}
			_, ok := asm.Label[label]
			if ok {
				err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrLabelDuplicate}
				return
			}
			asm.Label[label] = addr
			continue
		}

		lines = append(lines, source{
			LineNo: lineno,
			Addr:   addr,
			Text:   strings.TrimSuffix(text, "\r"),
			Code:   code,
		})
		addr += stride
	}

	err = scanner.Err()
	return
}

// resolve rewrites the label operand of a branch into a relative byte
// offset. Other lines are returned unchanged.
func (asm *Assembler) resolve(src source) (code string, err error) {
	code = src.Code

	token, rest := splitOpcode(src.Code)
	op, err := Classify(token)
	if err != nil || op.Family != isa.FAMILY_BRANCH {
		err = nil
		return
	}

	label := strings.TrimSpace(rest)
	addr, ok := asm.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	code = fmt.Sprintf("%v %d", token, int64(addr)-int64(src.Addr))
	return
}

// assemble turns a resolved line into its instruction and word.
func (asm *Assembler) assemble(parser *Parser, src source, code string) (line Line, err error) {
	code, err = asm.expand(code, src)
	if err != nil {
		return
	}

	inst, err := parser.ParseLine(code)
	if err != nil {
		return
	}

	word, err := isa.Encode(inst)
	if err != nil {
		return
	}

	line = Line{
		LineNo:   src.LineNo,
		Addr:     src.Addr,
		Text:     src.Text,
		Resolved: code,
		Inst:     inst,
		Word:     word,
	}
	return
}

// Parse assembles an input stream into a Program.
//
// A missing or duplicated label always stops the run. Other bad lines stop
// it under POLICY_ABORT, and are recorded in Program.Skipped under
// POLICY_SKIP. On error the lines assembled so far are still returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	cfg := asm.config()
	err = cfg.Validate()
	if err != nil {
		return
	}

	if asm.Label == nil {
		asm.Label = make(map[string]uint32, 16)
	}
	clear(asm.Label)

	lines, err := asm.collect(input, cfg.Stride)
	if err != nil {
		return
	}

	prog = &Program{
		Labels: maps.Clone(asm.Label),
	}

	parser := NewParser(cfg)

	for _, src := range lines {
		var code string
		code, err = asm.resolve(src)
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: err}
			return
		}

		var line Line
		line, err = asm.assemble(parser, src, code)
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: err}
			if cfg.Policy == POLICY_ABORT {
				return
			}
			if asm.Verbose {
				asm.logger().WithField("line", src.LineNo).Warnf("skipped: %v", err)
			}
			prog.Skipped = multierror.Append(prog.Skipped, err)
			err = nil
			continue
		}

		if asm.Verbose {
			asm.logger().WithFields(logrus.Fields{
				"line": line.LineNo,
				"addr": fmt.Sprintf("%#x", line.Addr),
				"word": fmt.Sprintf("%08x", line.Word),
			}).Info(line.Inst.String())
		}

		prog.Lines = append(prog.Lines, line)
	}

	return
}
