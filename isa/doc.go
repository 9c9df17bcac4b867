// Package isa models the A32 instruction subset understood by the assembler
// and packs it into machine words.
//
// Five instruction families are supported: data processing, single register
// memory transfer, multiply, branch, and branch-and-exchange. Each family is a
// plain struct holding only the fields its encoding needs; Encode packs any of
// them into a 32-bit word and returns it in target memory byte order.
package isa
