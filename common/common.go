// Package common gathers small helpers shared by tests and benchmarks:
// chunked parallel execution, profiling wrappers, timing and randomness.
package common

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FrSliceToString pretty prints a slice of fr.Element to ease debugging
func FrSliceToString(slice []fr.Element) string {
	res := "["
	for _, x := range slice {
		res += fmt.Sprintf("%v, ", x.String())
	}
	res += "]"
	return res
}

// RandomFrSlice returns a deterministic pseudo-random slice of field
// elements. Benchmarks use it to keep inputs stable across runs.
func RandomFrSlice(size int) []fr.Element {
	res := make([]fr.Element, size)
	for i := range res {
		res[i].SetUint64(uint64(i)*uint64(i) ^ 0xf45c9df123f)
	}
	return res
}
