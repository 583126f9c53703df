package script

import "errors"

// ErrNotAssignable is returned by PropertyStack.Set when no accessor on
// the stack claims the given property.
var ErrNotAssignable = errors.New("script: property not assignable")

// PropertyAccessor answers get/set requests for user-interface
// properties on behalf of whichever screen or dialog registered it. Get
// returns ok=false to defer to the next accessor down the stack; Set
// returns false for the same reason.
type PropertyAccessor interface {
	Get(prop Property) (Value, bool)
	Set(prop Property, value Value) bool
}

// PropertyStack is a LIFO of PropertyAccessors: the most recently added
// accessor is asked first, and a property resolves to whichever accessor
// first claims it. It does not manage the lifetime of the accessors it
// holds — callers must Remove an accessor before it goes away.
type PropertyStack struct {
	accessors []PropertyAccessor
}

// NewPropertyStack returns an empty stack.
func NewPropertyStack() *PropertyStack {
	return &PropertyStack{}
}

// Add pushes a onto the stack; it becomes the first accessor consulted.
func (s *PropertyStack) Add(a PropertyAccessor) {
	s.accessors = append(s.accessors, a)
}

// Remove drops the most-recently-added occurrence of a from the stack,
// if present.
func (s *PropertyStack) Remove(a PropertyAccessor) {
	for i := len(s.accessors) - 1; i >= 0; i-- {
		if s.accessors[i] == a {
			s.accessors = append(s.accessors[:i], s.accessors[i+1:]...)
			return
		}
	}
}

// Get asks each accessor, most recently added first, returning the first
// claimed value. Returns ok=false if no accessor on the stack claims
// prop.
func (s *PropertyStack) Get(prop Property) (Value, bool) {
	for i := len(s.accessors) - 1; i >= 0; i-- {
		if v, ok := s.accessors[i].Get(prop); ok {
			return v, true
		}
	}
	return nil, false
}

// Set asks each accessor, most recently added first, to accept the new
// value. Returns ErrNotAssignable if none claims prop.
func (s *PropertyStack) Set(prop Property, value Value) error {
	for i := len(s.accessors) - 1; i >= 0; i-- {
		if s.accessors[i].Set(prop, value) {
			return nil
		}
	}
	return ErrNotAssignable
}
