package styles

import (
	"iter"
)

// Keys yields the serialized key of every rule in registration order:
// rules group by noun path in the order paths were first seen, and within
// a path by state-set registration order. The sequence is restartable and
// reflects the sheet as of each range, so mutating between ranges is fine;
// mutating mid-range is not.
func (s *Sheet[T]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pe := range s.paths {
			for _, v := range pe.variants {
				if !yield(SerializeKey(pe.path, v.states)) {
					return
				}
			}
		}
	}
}

// Values yields every stored value in the same order as Keys.
func (s *Sheet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, pe := range s.paths {
			for _, v := range pe.variants {
				if !yield(v.value) {
					return
				}
			}
		}
	}
}

// Entries yields each rule as a serialized key and value pair, in the same
// order as Keys.
func (s *Sheet[T]) Entries() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, pe := range s.paths {
			for _, v := range pe.variants {
				if !yield(SerializeKey(pe.path, v.states), v.value) {
					return
				}
			}
		}
	}
}
