package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fingerprintFixture(op Op, swapInputs bool) *Circuit {
	c := New()
	x := c.NewWire()
	y := c.NewWire()
	out := c.NewWire()
	c.AddGate(op, x, y, out)
	if swapInputs {
		c.MarkInput(y)
		c.MarkInput(x)
	} else {
		c.MarkInput(x)
		c.MarkInput(y)
	}
	c.MarkOutput(out)
	return c
}

func TestFingerprintIsReproducible(t *testing.T) {

	a := fingerprintFixture(Add, false)
	b := fingerprintFixture(Add, false)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "identical builds must agree")
}

func TestFingerprintSeesGateOp(t *testing.T) {

	a := fingerprintFixture(Add, false)
	b := fingerprintFixture(Mul, false)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSeesMarkingOrder(t *testing.T) {

	a := fingerprintFixture(Add, false)
	b := fingerprintFixture(Add, true)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSeesWiring(t *testing.T) {

	a := fingerprintFixture(Add, false)

	b := New()
	x := b.NewWire()
	y := b.NewWire()
	out := b.NewWire()
	// same shape, x and y exchanged inside the gate
	b.AddGate(Add, y, x, out)
	b.MarkInput(x)
	b.MarkInput(y)
	b.MarkOutput(out)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSeesSpareWires(t *testing.T) {

	a := fingerprintFixture(Add, false)
	b := fingerprintFixture(Add, false)
	b.NewWire()

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
