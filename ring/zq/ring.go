// Package zq instantiates the circuit algebra over Z_q, the integers
// modulo an arbitrary uint64 modulus.
//
// The modulus does not have to be prime: zq is the cheap way to exercise
// ring-generic code on something that is not a field, the way plaintext
// moduli are picked in the lattice-based MPC stacks.
package zq

import (
	"github.com/ldsec/lattigo/ring"
)

// Ring implements the circuit algebra for a fixed modulus q. Elements are
// plain uint64 residues; arithmetic goes through lattigo's big integers so
// no intermediate product can overflow.
type Ring struct {
	q uint64
}

// New builds the ring of integers modulo q. It panics for q < 2, which
// leaves no room for two distinct elements.
func New(q uint64) Ring {
	if q < 2 {
		panic("zq: modulus must be at least 2")
	}
	return Ring{q: q}
}

// Modulus returns q
func (r Ring) Modulus() uint64 {
	return r.q
}

// Add returns a+b mod q
func (r Ring) Add(a, b uint64) uint64 {
	res := ring.NewUint(0)
	res.Add(ring.NewUint(a), ring.NewUint(b)).Mod(res, ring.NewUint(r.q))
	return res.Uint64()
}

// Mul returns a*b mod q
func (r Ring) Mul(a, b uint64) uint64 {
	res := ring.NewUint(0)
	res.Mul(ring.NewUint(a), ring.NewUint(b)).Mod(res, ring.NewUint(r.q))
	return res.Uint64()
}

// Equal reports whether a and b are the same residue mod q
func (r Ring) Equal(a, b uint64) bool {
	return r.reduce(a) == r.reduce(b)
}

// Copy returns a itself: uint64 is a value
func (r Ring) Copy(a uint64) uint64 {
	return a
}

// Random samples a uniform element of [0, q)
func (r Ring) Random() uint64 {
	return ring.RandInt(ring.NewUint(r.q)).Uint64()
}

func (r Ring) reduce(a uint64) uint64 {
	res := ring.NewUint(0)
	res.Mod(ring.NewUint(a), ring.NewUint(r.q))
	return res.Uint64()
}
