package common

import (
	"time"

	"github.com/consensys/artgc/logger"
)

// Timer logs the wall time of a phase when closed:
//
//	defer common.NewTimer("build mimc circuit").Close()
type Timer struct {
	label string
	t     time.Time
}

// NewTimer starts a timer for the given phase label
func NewTimer(label string) Timer {
	return Timer{
		label: label,
		t:     time.Now(),
	}
}

// Close logs the elapsed time at debug level
func (t Timer) Close() {
	log := logger.Logger()
	log.Debug().Dur("took", time.Since(t.t)).Msg(t.label)
}
