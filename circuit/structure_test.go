package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormed() *Circuit {
	c := New()
	x := c.NewWire()
	c.MarkInput(x)
	y := c.NewWire()
	c.MarkInput(y)
	s := c.NewWire()
	c.AddGate(Add, x, y, s)
	p := c.NewWire()
	c.AddGate(Mul, s, y, p)
	c.MarkOutput(p)
	return c
}

func TestCheckStructureAcceptsWellFormedCircuit(t *testing.T) {
	c := wellFormed()
	require.NoError(t, c.Validate())
	assert.NoError(t, c.CheckStructure())
}

func TestCheckStructureRejectsDoubleProducer(t *testing.T) {

	c := wellFormed()
	// rewire a second gate onto the wire gate 0 already drives
	out := c.Gate(0).Out
	in := c.Inputs()[0]
	c.AddGate(Mul, in, in, out)

	err := c.CheckStructure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one gate")
}

func TestCheckStructureRejectsUndrivenWire(t *testing.T) {

	c := New()
	in := c.NewWire()
	c.MarkInput(in)
	ghost := c.NewWire()
	out := c.NewWire()
	c.AddGate(Add, in, ghost, out)
	c.MarkOutput(out)

	err := c.CheckStructure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never driven")
}

func TestCheckStructureRejectsUnconsumedWire(t *testing.T) {

	c := New()
	in := c.NewWire()
	c.MarkInput(in)
	a := c.NewWire()
	c.AddGate(Add, in, in, a)
	b := c.NewWire()
	c.AddGate(Mul, in, in, b)
	c.MarkOutput(a)
	// b is driven but neither consumed nor marked as output

	err := c.CheckStructure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never consumed")
}

func TestCheckStructureRejectsForeignWires(t *testing.T) {

	c := New()
	in := c.NewWire()
	c.MarkInput(in)
	out := c.NewWire()
	c.AddGate(Add, in, WireID(57), out)
	c.MarkOutput(out)

	err := c.CheckStructure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside of the circuit")
}

func TestCheckStructureRejectsGateDrivingAnInput(t *testing.T) {

	c := New()
	in := c.NewWire()
	c.MarkInput(in)
	other := c.NewWire()
	c.MarkInput(other)
	c.AddGate(Add, in, in, other)
	c.MarkOutput(other)

	err := c.CheckStructure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marked as a primary input")
}
