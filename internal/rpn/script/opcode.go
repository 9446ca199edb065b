package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/rpn/internal/rpn/stack"
)

type OPCODE byte

const (
	PUSH OPCODE = iota + 10
	POP
	PEEK
	DUP
	SWAP
	OVER
	TUCK
	DELETE
	CLEAR
	FILL
	RANGE
)

var opNames = map[OPCODE]string{
	PUSH:   "push",
	POP:    "pop",
	PEEK:   "peek",
	DUP:    "dup",
	SWAP:   "swap",
	OVER:   "over",
	TUCK:   "tuck",
	DELETE: "delete",
	CLEAR:  "clear",
	FILL:   "fill",
	RANGE:  "range",
}

func (c OPCODE) String() string {
	if name, ok := opNames[c]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE(%d)", byte(c))
}

// Op 操作码
type Op struct {
	Code  OPCODE
	Data  stack.Entry // PUSH, FILL
	Index int         // DELETE
	Range stack.Range // RANGE
}

func (op Op) String() string {
	switch op.Code {
	case PUSH, FILL:
		return op.Code.String() + " " + op.Data.String()
	case DELETE:
		return fmt.Sprintf("%s %d", op.Code, op.Index)
	case RANGE:
		return fmt.Sprintf("%s %s %s", op.Code, formatBound(op.Range.Start, true), formatBound(op.Range.End, false))
	default:
		return op.Code.String()
	}
}

// 区间端点的文本形式:
//
//	*   无界
//	N   起点包含、终点不包含
//	(N  起点不包含
//	N]  终点包含
func formatBound(b stack.Bound, start bool) string {
	switch b.Kind {
	case stack.Included:
		if start {
			return strconv.Itoa(b.Index)
		}
		return strconv.Itoa(b.Index) + "]"
	case stack.Excluded:
		if start {
			return "(" + strconv.Itoa(b.Index)
		}
		return strconv.Itoa(b.Index)
	default:
		return "*"
	}
}

func parseBound(w string, start bool) (stack.Bound, error) {
	if w == "*" {
		return stack.NoBound(), nil
	}
	kind := stack.Included
	switch {
	case start && strings.HasPrefix(w, "("):
		kind, w = stack.Excluded, w[1:]
	case !start && strings.HasSuffix(w, "]"):
		w = w[:len(w)-1]
	case !start:
		kind = stack.Excluded
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return stack.Bound{}, errors.Wrap(err, "bad bound")
	}
	return stack.Bound{Kind: kind, Index: n}, nil
}
