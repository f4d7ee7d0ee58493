// Package ring declares the algebraic capability a value type must provide
// to flow through an arithmetic circuit.
package ring

// Ring is the minimal set of operations an evaluator needs from an element
// type: closed addition and multiplication, equality and copying. The
// element type E stays a plain value; the Ring instance carries the
// operations, so foreign element types plug in without wrapper types.
//
// Implementations must not mutate their operands and must be safe for
// concurrent use: gates inside one circuit layer may be evaluated in any
// order, or in parallel.
type Ring[E any] interface {
	// Add returns a+b, leaving both operands untouched
	Add(a, b E) E
	// Mul returns a*b, leaving both operands untouched
	Mul(a, b E) E
	// Equal reports whether a and b represent the same element
	Equal(a, b E) bool
	// Copy returns a value independent of a: writes through one must not
	// show through the other
	Copy(a E) E
}
