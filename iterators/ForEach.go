package iterators

// ForEach calls fn with every value of the iterator.
// Returning Break from fn stops the iteration without an error.
func ForEach[T any](i Iterator[T], fn func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := fn(i.Value()); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return i.Err()
}
