package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Validate for a circuit with no marked input wire
	ErrEmptyInput = errors.New("circuit has no input wire")
	// ErrEmptyOutput is returned by Validate for a circuit with no marked output wire
	ErrEmptyOutput = errors.New("circuit has no output wire")
)

// CyclicPathError reports a cycle reachable from the primary inputs. Gate is
// a gate sitting on the cycle and Wire the wire through which the walk
// reached it a second time.
type CyclicPathError struct {
	Gate GateID
	Wire WireID
}

func (e *CyclicPathError) Error() string {
	return fmt.Sprintf("circuit has a cyclic path: gate %d is re-entered through wire %d", e.Gate, e.Wire)
}

// EmptyWireError reports a wire left without a layer, and therefore without
// a value, after a full assignment pass. It means the wire is disconnected
// from the primary inputs or starved by a cycle.
type EmptyWireError struct {
	Wire WireID
}

func (e *EmptyWireError) Error() string {
	return fmt.Sprintf("wire %d was never assigned a layer and a value", e.Wire)
}
