package filteriterator

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething filteriterator.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// ErrTerminalCursor is the panic value when a Cursor that already reached the end of its range is dereferenced.
const ErrTerminalCursor Error = "filteriterator: dereferencing a terminal cursor"
