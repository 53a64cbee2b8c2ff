package intervaltree

import "errors"

var (
	// ErrIteratorRemoveWithoutNext is returned by Iterator.Remove when it
	// is called before the iterator's first successful Next, or a second
	// time for the same element.
	ErrIteratorRemoveWithoutNext = errors.New("intervaltree: Remove called before Next or twice for the same element")

	// ErrConcurrentModification is the error an Iterator surfaces through
	// Err once it observes that the tree changed underneath it through
	// any path other than the iterator's own Remove.
	ErrConcurrentModification = errors.New("intervaltree: tree was modified during iteration")
)
