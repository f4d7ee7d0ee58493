package circuit

import (
	"github.com/bits-and-blooms/bitset"
)

// noGate marks wires no gate drives in the connection index
const noGate GateID = -1

// wireConn indexes the neighborhood of a single wire: the gates reading it
// and the gate driving it. Primary inputs and stray wires keep noGate.
type wireConn struct {
	toGates  []GateID
	fromGate GateID
}

// connections builds the wire-indexed connection table of the circuit. When
// several gates drive the same wire the last one wins; CheckStructure is
// the place where that situation is reported.
func (c *Circuit) connections() []wireConn {
	conns := make([]wireConn, c.nbWires)
	for i := range conns {
		conns[i].fromGate = noGate
	}
	for _, g := range c.gates {
		conns[g.X].toGates = append(conns[g.X].toGates, g.ID)
		if g.Y != g.X {
			conns[g.Y].toGates = append(conns[g.Y].toGates, g.ID)
		}
		conns[g.Out].fromGate = g.ID
	}
	return conns
}

// DetectCycle walks the circuit from its primary inputs and reports the
// first gate reached twice along a single exploration path. It returns nil
// for an acyclic circuit and a *CyclicPathError naming the re-entered gate
// and the wire carrying the re-entry otherwise.
//
// The walk is a depth-first search over an explicit frame stack, so deep
// circuits cannot exhaust the goroutine stack, and every gate fully
// explored without uncovering a cycle is marked done and never expanded
// again. Total work stays linear in the number of gates and wires. Gates
// unreachable from the inputs are not visited at all; Layers reports their
// wires as empty instead.
func DetectCycle(c *Circuit) error {
	conns := c.connections()

	onPath := bitset.New(uint(len(c.gates)))
	done := bitset.New(uint(len(c.gates)))

	// frame tracks how far the successors of one on-path gate were explored
	type frame struct {
		gate GateID
		next int
	}
	stack := make([]frame, 0, len(c.gates))

	for _, in := range c.inputs {
		for _, seed := range conns[in].toGates {
			if done.Test(uint(seed)) {
				continue
			}

			// the stack is empty here, so the seed cannot be on a path yet
			onPath.Set(uint(seed))
			stack = append(stack, frame{gate: seed})

			for len(stack) > 0 {
				f := &stack[len(stack)-1]
				out := c.gates[f.gate].Out
				succs := conns[out].toGates

				if f.next == len(succs) {
					onPath.Clear(uint(f.gate))
					done.Set(uint(f.gate))
					stack = stack[:len(stack)-1]
					continue
				}

				next := succs[f.next]
				f.next++

				if done.Test(uint(next)) {
					continue
				}
				if onPath.Test(uint(next)) {
					return &CyclicPathError{Gate: next, Wire: out}
				}
				onPath.Set(uint(next))
				stack = append(stack, frame{gate: next})
			}
		}
	}

	return nil
}
