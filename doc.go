// Package vecmin is a small toolbox of length-constrained sequences: slices
// that carry a floor on their length and refuse every operation that would
// break it.
//
// ✨ Why vecmin?
//
//   - Make "never empty" and "at least N" part of the type, not a comment
//   - Refusals are plain errors: nothing panics on the normal path
//   - Thin: growth is a slice append, removal is a slice delete plus one check
//
// Under the hood:
//
//	minseq/ - Seq[T] (at least Min() elements) and One[T] (at least one)
//	examples/ - runnable walkthroughs
//
//	go get github.com/katalvlaran/vecmin
package vecmin
