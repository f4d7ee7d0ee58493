package circuit

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a Keccak-256 digest binding the complete structure of
// the circuit: the wire and gate counts, every gate's operation and wiring
// in creation order, and the input and output marks in positional order.
//
// Two parties about to run a protocol over a shared circuit can compare
// fingerprints to make sure they agree on the computation. Any difference
// in wiring, operations or boundary ordering changes the digest.
func (c *Circuit) Fingerprint() [32]byte {
	keccak := sha3.NewLegacyKeccak256()

	buf := make([]byte, 8)
	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf, uint64(v))
		keccak.Write(buf)
	}

	writeInt(c.nbWires)
	writeInt(len(c.gates))
	for _, g := range c.gates {
		writeInt(int(g.Op))
		writeInt(int(g.X))
		writeInt(int(g.Y))
		writeInt(int(g.Out))
	}
	writeInt(len(c.inputs))
	for _, w := range c.inputs {
		writeInt(int(w))
	}
	writeInt(len(c.outputs))
	for _, w := range c.outputs {
		writeInt(int(w))
	}

	var digest [32]byte
	copy(digest[:], keccak.Sum(nil))
	return digest
}
