package stack

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryKind 栈元素类型
type EntryKind uint8

const (
	Placeholder EntryKind = iota
	Integer
	Decimal
)

func (k EntryKind) String() string {
	switch k {
	case Placeholder:
		return "placeholder"
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("EntryKind(%d)", uint8(k))
	}
}

// Entry is a calculator operand. It is a plain value and is always copied,
// never shared.
type Entry struct {
	kind EntryKind
	i    int32
	f    float32
}

// Dummy 占位元素
func Dummy() Entry {
	return Entry{kind: Placeholder}
}

func Int(v int32) Entry {
	return Entry{kind: Integer, i: v}
}

func Dec(v float32) Entry {
	return Entry{kind: Decimal, f: v}
}

func (e Entry) Kind() EntryKind {
	return e.kind
}

// Int returns the integer payload; ok is false for any other kind.
func (e Entry) Int() (v int32, ok bool) {
	return e.i, e.kind == Integer
}

// Dec returns the decimal payload; ok is false for any other kind.
func (e Entry) Dec() (v float32, ok bool) {
	return e.f, e.kind == Decimal
}

func (e Entry) String() string {
	switch e.kind {
	case Integer:
		return strconv.FormatInt(int64(e.i), 10)
	case Decimal:
		s := strconv.FormatFloat(float64(e.f), 'g', -1, 32)
		if strings.ContainsAny(s, ".eIN") {
			return s
		}
		// 保证小数与整数的文本形式可区分
		return s + ".0"
	default:
		return "_"
	}
}
