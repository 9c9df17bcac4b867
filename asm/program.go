package asm

import (
	"bufio"
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/ezrec/a32asm/isa"
)

// Line is one assembled instruction.
type Line struct {
	LineNo   int             // Source line number.
	Addr     uint32          // Address assigned in the first pass.
	Text     string          // Source text as written.
	Resolved string          // Text after label and expression substitution.
	Inst     isa.Instruction // Parsed instruction.
	Word     uint32          // Encoded word, in target byte order.
}

// String formats the line for the listing.
func (line Line) String() string {
	return fmt.Sprintf("%v - %08x", line.Text, line.Word)
}

// Symbol is a label and its address.
type Symbol struct {
	Name string
	Addr uint32
}

// Program is the result of an assembly run.
type Program struct {
	Lines   []Line            // Assembled lines, in source order.
	Labels  map[string]uint32 // Label addresses.
	Skipped *multierror.Error // Lines dropped under POLICY_SKIP.
}

// Err returns the skipped line errors, or nil.
func (prog *Program) Err() error {
	return prog.Skipped.ErrorOrNil()
}

// Words iterates over the address and word of every line.
func (prog *Program) Words() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, word uint32) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Addr, line.Word) {
				return
			}
		}
	}
}

// Binary returns the words as a memory image starting at address zero.
// Each word is placed at its line address and gaps are zero filled. Words
// are already in target byte order, so they are laid down most significant
// byte first.
func (prog *Program) Binary() (bin []byte) {
	bin = []byte{}
	for addr, word := range prog.Words() {
		end := int(addr) + 4
		if end > len(bin) {
			bin = append(bin, make([]byte, end-len(bin))...)
		}
		binary.BigEndian.PutUint32(bin[addr:end], word)
	}
	return
}

// Symbols returns the labels ordered by address, then name.
func (prog *Program) Symbols() (syms []Symbol) {
	for _, name := range slices.Sorted(maps.Keys(prog.Labels)) {
		syms = append(syms, Symbol{Name: name, Addr: prog.Labels[name]})
	}
	slices.SortStableFunc(syms, func(a, b Symbol) int {
		return cmp.Compare(a.Addr, b.Addr)
	})
	return
}

// WriteListing writes one "text - word" line per instruction.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	for _, line := range prog.Lines {
		_, err = fmt.Fprintln(out, line.String())
		if err != nil {
			return
		}
	}
	err = out.Flush()
	return
}
