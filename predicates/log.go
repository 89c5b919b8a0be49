package predicates

import "go.uber.org/zap"

// Logged logs every decision of the predicate at debug level.
func Logged[T any](logger *zap.Logger, p Predicate[T]) Predicate[T] {
	return PredicateFunc[T](func(v T) bool {
		ok := p.Match(v)
		logger.Debug("predicate evaluated", zap.Any("value", v), zap.Bool("accepted", ok))
		return ok
	})
}
