package stack

import (
	"errors"
	"fmt"
)

// Kind 错误类型，集合是封闭的
type Kind uint8

const (
	Overflow Kind = iota + 1
	Underflow
	Empty
	NotEnoughElements
	InvalidRange
	InvalidStartIndex
	InvalidEndIndex
	Invalid
)

var kindNames = map[Kind]string{
	Overflow:          "overflow",
	Underflow:         "underflow",
	Empty:             "empty",
	NotEnoughElements: "not_enough_elements",
	InvalidRange:      "invalid_range",
	InvalidStartIndex: "invalid_start_index",
	InvalidEndIndex:   "invalid_end_index",
	Invalid:           "invalid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Error is returned by every fallible stack operation. Only the fields that
// belong to Kind are meaningful:
//
//	InvalidRange                       Start, End, Top
//	InvalidStartIndex, InvalidEndIndex Index
//	Invalid                            Reason
type Error struct {
	Kind   Kind
	Start  int
	End    int
	Top    int
	Index  int
	Reason string
}

var (
	ErrOverflow          = &Error{Kind: Overflow}
	ErrUnderflow         = &Error{Kind: Underflow}
	ErrEmpty             = &Error{Kind: Empty}
	ErrNotEnoughElements = &Error{Kind: NotEnoughElements}
	ErrInvalidRange      = &Error{Kind: InvalidRange}
	ErrInvalidStartIndex = &Error{Kind: InvalidStartIndex}
	ErrInvalidEndIndex   = &Error{Kind: InvalidEndIndex}
	ErrInvalid           = &Error{Kind: Invalid}
)

func (e *Error) Error() string {
	switch e.Kind {
	case Overflow:
		return "stack overflow"
	case Underflow:
		return "stack underflow"
	case Empty:
		return "stack is empty"
	case NotEnoughElements:
		return "not enough elements on the stack"
	case InvalidRange:
		return fmt.Sprintf("range from %d to %d is invalid for stack with top %d", e.Start, e.End, e.Top)
	case InvalidStartIndex:
		return fmt.Sprintf("lower bound index %d is out of range", e.Index)
	case InvalidEndIndex:
		return fmt.Sprintf("upper bound index %d is out of range", e.Index)
	case Invalid:
		return "invalid stack state: " + e.Reason
	default:
		return e.Kind.String()
	}
}

// Is 按错误类型比较，携带数据的错误也能与哨兵错误匹配
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf reports the Kind of err, unwrapping as needed. ok is false when err
// does not come from this package.
func KindOf(err error) (k Kind, ok bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

func rangeError(start, end, top int) error {
	return &Error{Kind: InvalidRange, Start: start, End: end, Top: top}
}

func startIndexError(i int) error {
	return &Error{Kind: InvalidStartIndex, Index: i}
}

func endIndexError(i int) error {
	return &Error{Kind: InvalidEndIndex, Index: i}
}

func invalid(reason string) error {
	return &Error{Kind: Invalid, Reason: reason}
}
