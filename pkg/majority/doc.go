// Package majority finds the strict majority element of a finite collection
// using the Boyer-Moore majority vote.
//
// A majority element occupies strictly more than half of the positions of the
// collection. The vote needs O(1) extra memory and a single pass; an optional
// second pass counts the candidate's occurrences to confirm it.
//
// # Usage
//
//	v, err := majority.Find([]int{3, 3, 4, 2, 4, 4, 2, 4, 4})
//	if err != nil {
//		// handle error
//	}
//	// v == 4
//
// Element types choose how equality is decided:
//
//   - Find uses == and requires a comparable type.
//   - FindFunc takes an explicit predicate.
//   - FindEqual uses the element's own Equal method (see Equaler), which is the
//     way to get field-wise equality for struct or pointer types.
//   - FindBy compares derived keys, e.g. case-folded strings, and returns the
//     original element.
//   - FindSeq accepts an iter.Seq and buffers it once.
//
// Analyze and AnalyzeBy run the same vote and also report scan statistics
// (threshold, scanned elements, early stop, exact occurrences).
//
// # Threshold
//
// The vote stops early and the counting pass succeeds at Threshold(n), which
// is floor(n/2)+1. An element present at exactly half of an even-sized
// collection is therefore not a majority:
//
//	majority.Find([]int{1, 1, 2, 2}) // ErrNoMajority
//
// # Validation
//
// Validation is on by default. WithoutValidation skips the counting pass for
// callers that already know a majority exists. Without that guarantee the
// returned element is undefined and no error is reported:
//
//	v, _ := majority.Find(items, majority.WithoutValidation())
//
// # Error Handling
//
// Input problems are returned, never raised:
//
//   - ErrNullInput: the collection is nil.
//   - ErrEmptyInput: the collection has no elements.
//   - ErrNoMajority: validation found no strict majority.
//
// KindOf maps an error to its Kind, which is handy for exit codes or API error
// bodies.
//
// # Memory
//
// Find, FindFunc, FindEqual and Analyze work in place. FindSeq materializes the
// sequence and FindBy stores one key per element, both O(n).
//
// All functions are pure and safe for concurrent use.
package majority
