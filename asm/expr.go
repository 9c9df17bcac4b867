package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations. Labels are visible as
// integer byte addresses, ADDR is the address of the current line and LINENO
// its source line.
func (asm *Assembler) parenEval(expr string, src source) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"ADDR":   starlark.MakeUint64(uint64(src.Addr)),
		"LINENO": starlark.MakeInt(src.LineNo),
	}
	for label, addr := range asm.Label {
		pred[label] = starlark.MakeUint64(uint64(addr))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand replaces every $(...) in a line with its decimal value.
func (asm *Assembler) expand(line string, src source) (out string, err error) {
	out = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], src)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	return
}
