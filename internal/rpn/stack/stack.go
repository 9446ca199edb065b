// Package stack implements the bounded operand stack of the calculator.
//
// A Stack owns a slot array whose length is fixed by New and never changes.
// Occupied slots always form the prefix [0, Len()); every failing call
// returns before touching that state. A Stack is not safe for concurrent use.
package stack

// DefaultCapacity 固件默认的栈容量
const DefaultCapacity = 256

type Stack[T any] struct {
	data []T // 长度恒为容量
	n    int // 已占用的槽数
}

// New 创建一个空栈，capacity 必须大于 0
func New[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		panic("stack: capacity must be positive")
	}
	return &Stack[T]{data: make([]T, capacity)}
}

// With 创建一个预先装入 entries 的栈，entries[0] 位于栈底
func With[T any](capacity int, entries ...T) (*Stack[T], error) {
	if len(entries) > capacity {
		return nil, ErrOverflow
	}
	s := New[T](capacity)
	s.n = copy(s.data, entries)
	return s, nil
}

func (s *Stack[T]) Cap() int {
	return len(s.data)
}

func (s *Stack[T]) Len() int {
	return s.n
}

func (s *Stack[T]) Empty() bool {
	return s.Len() == 0
}

func (s *Stack[T]) Full() bool {
	return s.Len() == s.Cap()
}

// Clear 清空所有槽位
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.data {
		s.data[i] = zero
	}
	s.n = 0
}

// Fill overwrites every slot with item and marks the stack full. Whatever was
// on the stack before is lost.
func (s *Stack[T]) Fill(item T) {
	for i := range s.data {
		s.data[i] = item
	}
	s.n = len(s.data)
}

// Validate checks the structural state of s. It returns an Invalid error for
// a Stack that was not built by New or With, or whose count has been
// corrupted; it never fails for a stack only touched through its methods.
func (s *Stack[T]) Validate() error {
	if s == nil {
		return invalid("nil stack")
	}
	if len(s.data) == 0 {
		return invalid("stack has no slots")
	}
	if cap(s.data) != len(s.data) {
		return invalid("slot array was resized")
	}
	if s.n < 0 || s.n > len(s.data) {
		return invalid("occupied count outside slot array")
	}
	return nil
}

// top 返回栈顶下标，调用前必须确认 n > 0
func (s *Stack[T]) top() int {
	return s.n - 1
}
