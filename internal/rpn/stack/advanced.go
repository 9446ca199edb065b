package stack

// Duplicate 复制栈顶元素并压栈
func (s *Stack[T]) Duplicate() error {
	if s.Empty() {
		return ErrEmpty
	}
	if s.Full() {
		return ErrOverflow
	}
	return s.Push(s.data[s.top()])
}

// DeleteAt removes and returns the entry at index (0 is the bottom). Entries
// above it move down one slot.
func (s *Stack[T]) DeleteAt(index int) (T, error) {
	var zero T
	if s.Empty() {
		return zero, ErrEmpty
	}
	top := s.top()
	if index < 0 || index > top {
		return zero, endIndexError(index)
	}
	v := s.data[index]
	copy(s.data[index:top], s.data[index+1:s.n])
	s.data[top] = zero
	s.n--
	return v, nil
}

// Swap 交换栈顶两个元素
func (s *Stack[T]) Swap() error {
	if err := s.needTwo(); err != nil {
		return err
	}
	top := s.top()
	s.data[top], s.data[top-1] = s.data[top-1], s.data[top]
	return nil
}

// Over pushes a copy of the entry just below the top.
func (s *Stack[T]) Over() error {
	if err := s.needTwo(); err != nil {
		return err
	}
	if s.Full() {
		return ErrOverflow
	}
	return s.Push(s.data[s.top()-1])
}

// Tuck inserts a copy of the top entry below the second entry from the top:
// (a b -- b a b). With a single entry it behaves like Duplicate.
func (s *Stack[T]) Tuck() error {
	switch {
	case s.Empty():
		return ErrEmpty
	case s.n == 1:
		return s.Duplicate()
	case s.Full():
		return ErrOverflow
	}
	second := s.n - 2
	v := s.data[s.top()]
	copy(s.data[second+1:s.n+1], s.data[second:s.n])
	s.data[second] = v
	s.n++
	return nil
}

// needTwo 检查栈中至少有两个元素
func (s *Stack[T]) needTwo() error {
	switch s.n {
	case 0:
		return ErrEmpty
	case 1:
		return ErrNotEnoughElements
	}
	return nil
}
