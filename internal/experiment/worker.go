package experiment

import (
	"sync"

	"github.com/kolkov/xorrace/internal/counter"
)

// workerTask is one unit of concurrent work: a fixed set of target
// counters, an operand source, and fixed round/iteration counts.
// Immutable once constructed; its only output is the side effect on the
// shared words, signalled through the WaitGroup.
type workerTask struct {
	targets    []counter.Counter
	operands   OperandSource
	rounds     int
	iterations int
}

// run executes the task to completion. The loop has no suspension
// points: no I/O, no channel operations, nothing that yields. In
// interleaved mode targets holds both counters and each iteration hits
// them back to back, the way the original experiment provoked its
// cross-variant effects.
func (w workerTask) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for r := 0; r < w.rounds; r++ {
		n := w.operands()
		for i := 0; i < w.iterations; i++ {
			for _, c := range w.targets {
				c.FetchXor(n)
			}
		}
	}
}
