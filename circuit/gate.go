package circuit

// WireID identifies a value carrier inside a circuit.
//
// A wire holds no state of its own: gates refer to the values they consume
// and produce through shared WireIDs, and each evaluation binds values to
// the IDs in per-run scratch space. The same circuit can therefore be
// evaluated many times, or concurrently, without being rebuilt.
type WireID int

// GateID identifies a gate within a circuit, assigned in creation order.
type GateID int

// Op is the arithmetic operation a gate applies to its input wires.
type Op uint8

const (
	// Add outputs the sum of the two input values
	Add Op = iota
	// Mul outputs the product of the two input values
	Mul
)

// String returns a short lowercase name for the operation
func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Mul:
		return "mul"
	default:
		return "invalid"
	}
}

// Gate is a two-input, single-output arithmetic node. It is a plain value:
// copying a Gate copies its wiring, never the circuit it belongs to.
type Gate struct {
	ID   GateID
	Op   Op
	X, Y WireID // input wires
	Out  WireID // output wire, driven by this gate only
}
