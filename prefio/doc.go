// Package prefio reads and writes the plain-text formats used by the
// stablematch tools.
//
// Instance format (blank lines ignored):
//
//	n
//	<n lines: hospital 1..n preference permutations>
//	<n lines: student 1..n preference permutations>
//
// Matching format: exactly n non-empty lines "<hospital> <student>".
//
// All ids are 1-based and space separated. Readers validate structure and
// ranges and return errors wrapping core.ErrMalformedInput (instances) or
// ErrMalformedMatching (matchings); they never print or exit.
//
// Files whose name ends in ".sz" are transparently compressed with the
// snappy framing format (Open / Create).
package prefio
