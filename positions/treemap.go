package positions

import (
	"github.com/emirpasic/gods/maps/treemap"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

// Entry is a key-value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// TreeMap returns the bounds of a gods tree map.
// The positions yield the entries in the key order of the map.
// Keys of the map must be of type K and values of type V.
func TreeMap[K, V any](m *treemap.Map) (first, last TreeMapPosition[K, V]) {
	it := m.Iterator()
	it.Next()
	return TreeMapPosition[K, V]{m: m, iter: it, index: 0}, TreeMapPosition[K, V]{m: m, index: m.Size()}
}

// TreeMapPosition is a position in a gods tree map.
// Positions are equal when they belong to the same map and have the same index.
type TreeMapPosition[K, V any] struct {
	filteriterator.ForwardTraversal

	m     *treemap.Map
	iter  treemap.Iterator
	index int
}

func (p TreeMapPosition[K, V]) Next() TreeMapPosition[K, V] {
	p.iter.Next()
	p.index++
	return p
}

func (p TreeMapPosition[K, V]) Value() Entry[K, V] {
	return Entry[K, V]{
		Key:   p.iter.Key().(K),
		Value: p.iter.Value().(V),
	}
}

func (p TreeMapPosition[K, V]) Equal(oth TreeMapPosition[K, V]) bool {
	return p.m == oth.m && p.index == oth.index
}
