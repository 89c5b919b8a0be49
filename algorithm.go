package filteriterator

// The functions below work with any ForwardPosition pair,
// whether it is a raw source position or a Cursor of a filtered Range.

// Distance returns the number of steps from first to last.
func Distance[P ForwardPosition[P, T], T any](first, last P) int {
	var n int
	for p := first; !p.Equal(last); p = p.Next() {
		n++
	}
	return n
}

// Collect copies the elements of [first, last) into a new slice.
func Collect[P ForwardPosition[P, T], T any](first, last P) []T {
	return AppendTo[P, T](nil, first, last)
}

// AppendTo appends the elements of [first, last) to dst and returns the extended slice.
func AppendTo[P ForwardPosition[P, T], T any](dst []T, first, last P) []T {
	for p := first; !p.Equal(last); p = p.Next() {
		dst = append(dst, p.Value())
	}
	return dst
}

// CountIf returns how many elements of [first, last) satisfy fn.
func CountIf[P ForwardPosition[P, T], T any](first, last P, fn func(T) bool) int {
	var n int
	for p := first; !p.Equal(last); p = p.Next() {
		if fn(p.Value()) {
			n++
		}
	}
	return n
}

// FindIf returns the position of the first element in [first, last) that satisfies fn,
// or last when no element does.
func FindIf[P ForwardPosition[P, T], T any](first, last P, fn func(T) bool) P {
	p := first
	for ; !p.Equal(last); p = p.Next() {
		if fn(p.Value()) {
			break
		}
	}
	return p
}

// ForEach calls fn with every element of [first, last) in order.
func ForEach[P ForwardPosition[P, T], T any](first, last P, fn func(T)) {
	for p := first; !p.Equal(last); p = p.Next() {
		fn(p.Value())
	}
}
