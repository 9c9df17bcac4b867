// Package asm implements a two pass assembler for the A32 subset modelled by
// package isa.
//
// Pass one records the address of every label. Pass two rewrites the label
// operand of each branch into a relative byte offset, then classifies, parses
// and encodes every instruction line in source order.
package asm
