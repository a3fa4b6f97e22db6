package square_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/magicsquare/square"
)

// TestEngine_ConcurrentUse exercises one shared Engine from many
// goroutines. Every operation is a pure function of its inputs, so no
// locking is required; run with -race to confirm.
func TestEngine_ConcurrentUse(t *testing.T) {
	e := square.New()
	const workers = 16

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			n := 4 * (w%4 + 1)
			for i := 0; i < 50; i++ {
				g, err := e.Generate(n)
				if err != nil {
					t.Errorf("Generate(%d) error: %v", n, err)

					return
				}
				ok, err := square.Validate(g)
				if err != nil || !ok {
					t.Errorf("Validate(Generate(%d)) = (%v, %v); want (true, nil)", n, ok, err)

					return
				}
				if _, err = e.Width(n * n); err != nil {
					t.Errorf("Width(%d) error: %v", n*n, err)

					return
				}
			}
		}(w)
	}
	wg.Wait()
}
