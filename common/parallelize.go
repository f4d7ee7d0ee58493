package common

import (
	"runtime"
	"sync"
)

// Parallelize splits nbIterations into contiguous chunks and hands each
// chunk to work on its own goroutine, then waits for all of them. The
// optional maxCpus caps the number of chunks; the default is the number of
// CPUs. work receives half-open [start, stop) bounds.
func Parallelize(nbIterations int, work func(start, stop int), maxCpus ...int) {

	nbTasks := runtime.NumCPU()
	if len(maxCpus) == 1 {
		nbTasks = maxCpus[0]
	}
	nbIterationsPerCpus := nbIterations / nbTasks

	// more CPUs than tasks: a CPU will work on exactly one iteration
	if nbIterationsPerCpus < 1 {
		nbIterationsPerCpus = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup

	extraTasks := nbIterations - (nbTasks * nbIterationsPerCpus)
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		wg.Add(1)
		start := i*nbIterationsPerCpus + extraTasksOffset
		stop := start + nbIterationsPerCpus
		if extraTasks > 0 {
			stop++
			extraTasks--
			extraTasksOffset++
		}
		go func() {
			work(start, stop)
			wg.Done()
		}()
	}

	wg.Wait()
}
