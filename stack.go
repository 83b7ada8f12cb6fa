package postfix

// Stack is a last-in, first-out container. The zero value is an empty stack
// ready to use. It is not safe to use a Stack concurrently.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the top from the stack and returns it. If the stack is empty,
// the error is ErrOutOfBounds.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrOutOfBounds
	}
	r := s.items[len(s.items)-1]
	// Clear the slot so the stack doesn't hold a reference to r.
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return r, nil
}

// Peek returns the top of the stack without removing it. If the stack is
// empty, the error is ErrOutOfBounds.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrOutOfBounds
	}
	return s.items[len(s.items)-1], nil
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
