package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CheckStructure audits the wiring beyond what Validate covers: gates must
// reference wires the circuit reserved, every wire must be driven exactly
// once (by a single gate output, or by being marked as input), and every
// wire must be consumed (by at least one gate, or by being marked as
// output). Layering and evaluation assume these properties; CheckStructure
// pinpoints the offending gate or wire when a circuit was assembled from
// identifiers the builder never handed out.
func (c *Circuit) CheckStructure() error {
	inRange := func(w WireID) bool {
		return w >= 0 && int(w) < c.nbWires
	}

	for _, g := range c.gates {
		if !inRange(g.X) || !inRange(g.Y) || !inRange(g.Out) {
			return fmt.Errorf("gate %d references a wire outside of the circuit", g.ID)
		}
	}
	for _, w := range c.inputs {
		if !inRange(w) {
			return fmt.Errorf("input wire %d was not reserved by this circuit", w)
		}
	}
	for _, w := range c.outputs {
		if !inRange(w) {
			return fmt.Errorf("output wire %d was not reserved by this circuit", w)
		}
	}

	isInput := bitset.New(uint(c.nbWires))
	for _, w := range c.inputs {
		isInput.Set(uint(w))
	}
	isOutput := bitset.New(uint(c.nbWires))
	for _, w := range c.outputs {
		isOutput.Set(uint(w))
	}

	produced := bitset.New(uint(c.nbWires))
	for _, g := range c.gates {
		if isInput.Test(uint(g.Out)) {
			return fmt.Errorf("gate %d drives wire %d which is marked as a primary input", g.ID, g.Out)
		}
		if produced.Test(uint(g.Out)) {
			return fmt.Errorf("wire %d is driven by more than one gate", g.Out)
		}
		produced.Set(uint(g.Out))
	}

	conns := c.connections()
	for w, conn := range conns {
		if conn.fromGate == noGate && !isInput.Test(uint(w)) {
			return fmt.Errorf("wire %d is never driven by an input mark or a gate", w)
		}
		if len(conn.toGates) == 0 && !isOutput.Test(uint(w)) {
			return fmt.Errorf("wire %d is never consumed by a gate or an output mark", w)
		}
	}

	return nil
}
