package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/a32asm/isa"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		token    string
		family   isa.Family
		code     int
		cond     isa.Cond
		setCodes bool
	}{
		{"add", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_AL, false},
		{"addeq", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_EQ, false},
		{"ADDNE", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_NE, false},
		{"adds", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_AL, true},
		{"addseq", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_EQ, true},
		{"addeqs", isa.FAMILY_DATA, int(isa.DATA_OP_ADD), isa.COND_EQ, true},
		{"movcs", isa.FAMILY_DATA, int(isa.DATA_OP_MOV), isa.COND_CS, false},
		{"movls", isa.FAMILY_DATA, int(isa.DATA_OP_MOV), isa.COND_LS, false},
		{"bic", isa.FAMILY_DATA, int(isa.DATA_OP_BIC), isa.COND_AL, false},
		{"bicle", isa.FAMILY_DATA, int(isa.DATA_OP_BIC), isa.COND_LE, false},
		{"mvn", isa.FAMILY_DATA, int(isa.DATA_OP_MVN), isa.COND_AL, false},
		{"cmp", isa.FAMILY_DATA, int(isa.DATA_OP_CMP), isa.COND_AL, false},
		{"str", isa.FAMILY_MEM, int(isa.MEM_OP_STR), isa.COND_AL, false},
		{"strb", isa.FAMILY_MEM, int(isa.MEM_OP_STRB), isa.COND_AL, false},
		{"strbeq", isa.FAMILY_MEM, int(isa.MEM_OP_STRB), isa.COND_EQ, false},
		{"streq", isa.FAMILY_MEM, int(isa.MEM_OP_STR), isa.COND_EQ, false},
		{"ldr", isa.FAMILY_MEM, int(isa.MEM_OP_LDR), isa.COND_AL, false},
		{"LDRB", isa.FAMILY_MEM, int(isa.MEM_OP_LDRB), isa.COND_AL, false},
		{"mul", isa.FAMILY_MUL, 0, isa.COND_AL, false},
		{"mulsgt", isa.FAMILY_MUL, 0, isa.COND_GT, true},
		{"bx", isa.FAMILY_BRANCH_EXCHANGE, 0, isa.COND_AL, false},
		{"bxne", isa.FAMILY_BRANCH_EXCHANGE, 0, isa.COND_NE, false},
		{"b", isa.FAMILY_BRANCH, 0, isa.COND_AL, false},
		{"bl", isa.FAMILY_BRANCH, 1, isa.COND_AL, false},
		{"beq", isa.FAMILY_BRANCH, 0, isa.COND_EQ, false},
		{"bleq", isa.FAMILY_BRANCH, 1, isa.COND_EQ, false},
		{"blt", isa.FAMILY_BRANCH, 0, isa.COND_LT, false},
		{"ble", isa.FAMILY_BRANCH, 0, isa.COND_LE, false},
		{"bls", isa.FAMILY_BRANCH, 0, isa.COND_LS, false},
		{"blle", isa.FAMILY_BRANCH, 1, isa.COND_LE, false},
		{"blo", isa.FAMILY_BRANCH, 0, isa.COND_CC, false},
		{"bhs", isa.FAMILY_BRANCH, 0, isa.COND_CS, false},
	}

	for _, entry := range table {
		op, err := Classify(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.family, op.Family, entry.token)
		assert.Equal(entry.code, op.Code, entry.token)
		assert.Equal(entry.cond, op.Cond, entry.token)
		assert.Equal(entry.setCodes, op.SetCodes, entry.token)
	}
}

func TestClassify_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		token string
		kind  error
	}{
		{"", ErrBadMnemonic},
		{"nop", ErrBadMnemonic},
		{"push", ErrBadMnemonic},
		{"xadd", ErrBadMnemonic},
		{"addxx", ErrBadCond},
		{"ldrh", ErrBadCond},
		{"bs", ErrBadCond},
		{"bxs", ErrBadCond},
		{"strbs", ErrBadCond},
		{"blx", ErrBadCond},
	}

	for _, entry := range table {
		_, err := Classify(entry.token)
		assert.ErrorIs(err, entry.kind, entry.token)
	}

	_, err := Classify("addzz")
	assert.ErrorIs(err, isa.ErrCondUnknown)
}

func TestMnemonicTable_Order(t *testing.T) {
	assert := assert.New(t)

	index := map[string]int{}
	for n, mn := range mnemonicTable {
		index[mn.Name] = n
	}

	assert.Len(mnemonicTable, 24)
	assert.Less(index["strb"], index["str"])
	assert.Less(index["ldrb"], index["ldr"])
	assert.Less(index["bl"], index["b"])
	assert.Less(index["bx"], index["b"])
	assert.Less(index["bic"], index["b"])
	assert.Less(index["mul"], index["bx"])
	assert.Equal("b", mnemonicTable[len(mnemonicTable)-1].Name)
}
