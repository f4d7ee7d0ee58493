// Package bn254 instantiates the circuit algebra over the scalar field of
// the BN254 curve, the field the rest of the Consensys stack computes in.
package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/artgc/ring"
)

// Ring implements ring.Ring over fr.Element. It is stateless: the zero
// value is ready to use and safe to share between goroutines.
type Ring struct{}

var _ ring.Ring[fr.Element] = Ring{}

// Add returns a+b
func (Ring) Add(a, b fr.Element) fr.Element {
	var res fr.Element
	res.Add(&a, &b)
	return res
}

// Mul returns a*b
func (Ring) Mul(a, b fr.Element) fr.Element {
	var res fr.Element
	res.Mul(&a, &b)
	return res
}

// Equal reports whether a and b are the same field element
func (Ring) Equal(a, b fr.Element) bool {
	return a.Equal(&b)
}

// Copy returns a detached copy of a. fr.Element is a plain value type, so
// assignment already copies the limbs.
func (Ring) Copy(a fr.Element) fr.Element {
	return a
}

// Random samples a uniform field element, panicking if the entropy source
// fails.
func Random() fr.Element {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		panic(err)
	}
	return e
}
