package iterators

import filteriterator "github.com/laplasian/filteriterator-tttask"

const (
	// ErrClosed is returned by Err when Next is called on an already closed iterator.
	ErrClosed filteriterator.Error = "iterators: closed"
	// Break makes ForEach stop without an error.
	Break filteriterator.Error = "iterators: break"
)
