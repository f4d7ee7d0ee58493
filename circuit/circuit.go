// Package circuit models computations as directed acyclic graphs of
// two-input arithmetic gates connected by wires.
//
// The package contains the static description of a circuit only: wires
// carry no values and gates carry no code. Assigning values to wires is the
// job of an evaluator walking the layers returned by Layers.
package circuit

// Circuit describes an arithmetic computation as gates wired together
// through shared wire identifiers.
//
// The zero-value semantics follow the builder pattern: wires are reserved
// with NewWire, gates appended with AddGate and the external boundary
// declared with MarkInput and MarkOutput. The struct's fields stay
// unexported and the accessors return copies, so a caller holding a
// *Circuit can inspect but never corrupt the graph.
type Circuit struct {
	inputs  []WireID
	outputs []WireID
	gates   []Gate
	nbWires int
}

// New constructs an empty circuit
func New() *Circuit {
	return &Circuit{}
}

// NewWire reserves a fresh wire and returns its identifier. Identifiers are
// dense: the n-th call returns WireID(n-1).
func (c *Circuit) NewWire() WireID {
	w := WireID(c.nbWires)
	c.nbWires++
	return w
}

// AddGate appends a gate computing op(x, y) into out and returns its
// identifier.
//
// The builder does not verify that x, y and out were obtained from NewWire,
// nor that out is not driven by another gate already. Circuits are expected
// to be built wire by wire through this API; CheckStructure audits the
// wiring of circuits coming from less trusted code paths.
func (c *Circuit) AddGate(op Op, x, y, out WireID) GateID {
	id := GateID(len(c.gates))
	c.gates = append(c.gates, Gate{ID: id, Op: op, X: x, Y: y, Out: out})
	return id
}

// MarkInput appends w to the ordered list of primary inputs. The position
// of the mark defines which evaluation input value the wire receives.
func (c *Circuit) MarkInput(w WireID) {
	c.inputs = append(c.inputs, w)
}

// MarkOutput appends w to the ordered list of primary outputs. The position
// of the mark defines where the wire's value appears in evaluation results.
func (c *Circuit) MarkOutput(w WireID) {
	c.outputs = append(c.outputs, w)
}

// Validate checks that the circuit has an external boundary: at least one
// input wire and at least one output wire. A circuit without inputs is
// reported before a circuit without outputs. Gate-free circuits whose
// outputs echo inputs are valid.
func (c *Circuit) Validate() error {
	if len(c.inputs) == 0 {
		return ErrEmptyInput
	}
	if len(c.outputs) == 0 {
		return ErrEmptyOutput
	}
	return nil
}

// NbWires returns the number of wires reserved so far
func (c *Circuit) NbWires() int {
	return c.nbWires
}

// NbGates returns the number of gates appended so far
func (c *Circuit) NbGates() int {
	return len(c.gates)
}

// Gate returns a snapshot of the gate with the given identifier
func (c *Circuit) Gate(id GateID) Gate {
	return c.gates[id]
}

// Gates returns a copy of the gate list in creation order
func (c *Circuit) Gates() []Gate {
	return append([]Gate(nil), c.gates...)
}

// Inputs returns a copy of the marked input wires in marking order
func (c *Circuit) Inputs() []WireID {
	return append([]WireID(nil), c.inputs...)
}

// NbInputs returns the number of input marks
func (c *Circuit) NbInputs() int {
	return len(c.inputs)
}

// Outputs returns a copy of the marked output wires in marking order
func (c *Circuit) Outputs() []WireID {
	return append([]WireID(nil), c.outputs...)
}

// NbOutputs returns the number of output marks
func (c *Circuit) NbOutputs() int {
	return len(c.outputs)
}
