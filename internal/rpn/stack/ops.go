package stack

// Push 将 item 写入栈顶之上
func (s *Stack[T]) Push(item T) error {
	if s.Full() {
		return ErrOverflow
	}
	s.data[s.n] = item
	s.n++
	return nil
}

// Pop 移除并返回栈顶元素
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.Empty() {
		return zero, ErrUnderflow
	}
	i := s.top()
	v := s.data[i]
	s.data[i] = zero
	s.n--
	return v, nil
}

// Peek returns the top entry; ok is false on an empty stack.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s.Empty() {
		return v, false
	}
	return s.data[s.top()], true
}

// PeekRange returns the occupied slots selected by r, bottom first. The
// returned slice aliases the stack and is only valid until the next mutating
// call; its capacity ends at its length.
func (s *Stack[T]) PeekRange(r Range) ([]T, error) {
	start, end, err := normalize(r, s.n)
	if err != nil {
		return nil, err
	}
	return s.data[start:end:end], nil
}
