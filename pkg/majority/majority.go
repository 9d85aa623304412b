package majority

import "iter"

// Equaler is implemented by element types that define their own value equality.
// Equal must be reflexive and symmetric; identity is not a substitute for it.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Outcome describes a successful vote.
type Outcome[T any] struct {
	// Value is the majority element.
	Value T
	// Index is the position in the input of the element returned as Value.
	Index int
	// Total is the number of elements in the input.
	Total int
	// Threshold is the minimum number of occurrences a majority element has.
	Threshold int
	// Scanned is the number of elements visited by the voting pass.
	Scanned int
	// EarlyStop reports whether the voting pass ended before the last element.
	EarlyStop bool
	// Validated reports whether the counting pass ran.
	Validated bool
	// Occurrences is the exact number of occurrences of Value.
	// It is zero when validation is disabled.
	Occurrences int
}

// Threshold returns the smallest occurrence count that is strictly more than
// half of n. For n == 1 it is 1; for an even n exactly half is not enough.
func Threshold(n int) int {
	return n/2 + 1
}

// Find returns the majority element of items using the == operator.
//
// A nil slice yields ErrNullInput, an empty one ErrEmptyInput, and a
// collection without a strict majority yields ErrNoMajority unless validation
// is disabled with WithoutValidation.
//
// Find panics only if == panics, i.e. when T is an interface type holding
// values of an uncomparable dynamic type.
func Find[T comparable](items []T, opts ...Option) (T, error) {
	out, err := vote(items, equal[T], newConfig(opts))
	return out.Value, err
}

// FindFunc is like Find but compares elements with eq.
func FindFunc[T any](items []T, eq func(a, b T) bool, opts ...Option) (T, error) {
	out, err := vote(items, eq, newConfig(opts))
	return out.Value, err
}

// FindEqual is like Find for element types that implement Equaler.
func FindEqual[T Equaler[T]](items []T, opts ...Option) (T, error) {
	out, err := vote(items, func(a, b T) bool { return a.Equal(b) }, newConfig(opts))
	return out.Value, err
}

// FindBy compares elements by the comparable key derived from each of them.
// The keys are computed once, so key is called exactly len(items) times and
// FindBy holds O(n) extra memory. The returned element is taken from items.
func FindBy[T any, K comparable](items []T, key func(T) K, opts ...Option) (T, error) {
	out, err := AnalyzeBy(items, key, opts...)
	return out.Value, err
}

// FindSeq is like Find for single-pass sources. The sequence is read once and
// buffered into an owned slice, which costs O(n) memory, so a nil sequence is
// the only way to get ErrNullInput; a sequence yielding nothing is empty.
func FindSeq[T comparable](seq iter.Seq[T], opts ...Option) (T, error) {
	if seq == nil {
		var zero T
		return zero, ErrNullInput
	}
	items := make([]T, 0)
	for v := range seq {
		items = append(items, v)
	}
	return Find(items, opts...)
}

// Analyze runs the vote with eq and reports scan statistics along with the element.
func Analyze[T any](items []T, eq func(a, b T) bool, opts ...Option) (Outcome[T], error) {
	return vote(items, eq, newConfig(opts))
}

// AnalyzeBy is the keyed variant of Analyze. See FindBy.
func AnalyzeBy[T any, K comparable](items []T, key func(T) K, opts ...Option) (Outcome[T], error) {
	if items == nil {
		return Outcome[T]{}, ErrNullInput
	}
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}

	kout, err := vote(keys, equal[K], newConfig(opts))
	if err != nil {
		return Outcome[T]{}, err
	}
	return Outcome[T]{
		Value:       items[kout.Index],
		Index:       kout.Index,
		Total:       kout.Total,
		Threshold:   kout.Threshold,
		Scanned:     kout.Scanned,
		EarlyStop:   kout.EarlyStop,
		Validated:   kout.Validated,
		Occurrences: kout.Occurrences,
	}, nil
}

func equal[T comparable](a, b T) bool { return a == b }

// vote is the Boyer-Moore majority vote followed by the optional counting pass.
//
// Invariant: when the counter reaches the threshold, the candidate has more
// matches than mismatches by at least floor(n/2)+1 since it was last chosen,
// so it occupies more than half of the positions and the scan can stop.
func vote[T any](items []T, eq func(a, b T) bool, cfg config) (Outcome[T], error) {
	if items == nil {
		return Outcome[T]{}, ErrNullInput
	}
	if len(items) == 0 {
		return Outcome[T]{}, ErrEmptyInput
	}

	n := len(items)
	stop := Threshold(n)
	candidate, counter := 0, 1
	scanned := 1

	for i := 1; i < n && counter < stop; i++ {
		scanned++
		if eq(items[i], items[candidate]) {
			counter++
		} else {
			counter--
		}
		if counter == 0 {
			candidate, counter = i, 1
		}
	}

	out := Outcome[T]{
		Value:     items[candidate],
		Index:     candidate,
		Total:     n,
		Threshold: stop,
		Scanned:   scanned,
		EarlyStop: scanned < n,
	}
	if !cfg.validate {
		return out, nil
	}

	occurrences := 0
	for i := range items {
		if eq(items[i], out.Value) {
			occurrences++
		}
	}
	if occurrences < stop {
		return Outcome[T]{}, ErrNoMajority
	}
	out.Validated = true
	out.Occurrences = occurrences
	return out, nil
}
