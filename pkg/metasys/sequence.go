package metasys

import (
	"iter"
)

// Seq is a lazily produced sequence of items. Iterating it may issue network
// requests; each step delivers either an item or the error that ended the
// sequence. Breaking out of the loop stops production immediately, so no
// further pages are fetched.
//
// A Seq may be iterated again, but every iteration replays the underlying
// fetches against the server.
type Seq[T any] iter.Seq2[T, error]

// Collect drains the sequence into a slice, preserving order. This forces
// all remaining page fetches. On a mid-stream failure it returns the items
// delivered before the failure together with the error.
func Collect[T any](seq Seq[T]) ([]T, error) {
	var items []T

	for item, err := range seq {
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// Filter yields only the items satisfying keep. It is lazy: it never fetches
// beyond what is needed to find the next matching item. Filtering happens
// client-side; server-side filtering belongs in query parameters.
func Filter[T any](seq Seq[T], keep func(T) bool) Seq[T] {
	return func(yield func(T, error) bool) {
		for item, err := range seq {
			if err != nil {
				yield(item, err)
				return
			}

			if !keep(item) {
				continue
			}

			if !yield(item, nil) {
				return
			}
		}
	}
}

// Map yields transform(item) for each item, preserving order and laziness.
func Map[T, U any](seq Seq[T], transform func(T) U) Seq[U] {
	return func(yield func(U, error) bool) {
		for item, err := range seq {
			if err != nil {
				var zero U

				yield(zero, err)

				return
			}

			if !yield(transform(item), nil) {
				return
			}
		}
	}
}

// First returns the first item satisfying match and stops producing as soon
// as it is found: a later page that would fail to fetch is never requested
// when a match exists on an earlier one. The boolean reports whether a match
// was found.
func First[T any](seq Seq[T], match func(T) bool) (T, bool, error) {
	for item, err := range seq {
		if err != nil {
			var zero T

			return zero, false, err
		}

		if match(item) {
			return item, true, nil
		}
	}

	var zero T

	return zero, false, nil
}

// Each invokes fn for every item in order, stopping at the first error from
// either the sequence or fn.
func Each[T any](seq Seq[T], fn func(T) error) error {
	for item, err := range seq {
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// Concat chains sequences in argument order. Production stays lazy: a
// sequence is not started until the previous one is exhausted.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return func(yield func(T, error) bool) {
		for _, seq := range seqs {
			for item, err := range seq {
				if err != nil {
					yield(item, err)
					return
				}

				if !yield(item, nil) {
					return
				}
			}
		}
	}
}
