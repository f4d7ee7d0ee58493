package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/trace"
	"testing"

	"github.com/pkg/profile"
)

// ProfileTrace runs the benchmark function fn with optional CPU profiling
// and runtime tracing. Artifacts land under ./profiling, named after the
// benchmark.
func ProfileTrace(b *testing.B, profiled, traced bool, fn func()) {
	var f *os.File
	var pprof interface{ Stop() }
	var err error

	if profiled || traced {
		if err = os.MkdirAll("profiling", 0o755); err != nil {
			panic(err)
		}
	}

	if traced {
		f, err = os.Create(filepath.Join("profiling", fmt.Sprintf("%v-trace.out", b.Name())))
		if err != nil {
			panic(err)
		}

		err = trace.Start(f)
		if err != nil {
			panic(err)
		}

		defer trace.Stop()
	}

	if profiled {
		pprof = profile.Start(
			profile.ProfilePath(filepath.Join("profiling", fmt.Sprintf("%v-pprof", b.Name()))),
			profile.Quiet,
		)
		defer pprof.Stop()
	}

	b.StartTimer()
	defer b.StopTimer()

	fn()
}
