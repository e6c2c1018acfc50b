// Package parallel splits an observation-point array into disjoint,
// contiguous chunks and runs each chunk through a worker pool: a work
// channel of chunk ranges, a results channel collecting the first error,
// and a WaitGroup closing results once every worker has drained the work
// channel.
package parallel

import (
	"fmt"
	"sync"
)

// chunk is a contiguous range [Start, End) of the observation arrays
// assigned to one worker.
type chunk struct {
	Start, End int
}

// Chunks splits [0, n) into njobs contiguous, roughly-equal ranges. The
// last chunk absorbs any remainder. njobs must be >= 1; n may be 0.
func Chunks(n, njobs int) []chunk {
	if njobs < 1 {
		njobs = 1
	}
	if njobs > n {
		njobs = n
		if njobs < 1 {
			njobs = 1
		}
	}
	size := n / njobs
	chunks := make([]chunk, 0, njobs)
	start := 0
	for i := 0; i < njobs; i++ {
		end := start + size
		if i == njobs-1 {
			end = n
		}
		chunks = append(chunks, chunk{Start: start, End: end})
		start = end
	}
	return chunks
}

// Run partitions [0, n) into njobs chunks and calls work once per chunk
// from a fixed pool of goroutines draining a work channel. Each call to
// work must only touch the index range [start, end) of any shared result
// buffer, so that workers never share mutable state and the result is
// independent of scheduling order or njobs.
func Run(n, njobs int, work func(start, end int) error) error {
	chunks := Chunks(n, njobs)

	workChan := make(chan chunk)
	results := make(chan error, len(chunks))

	var wg sync.WaitGroup
	workers := njobs
	if workers > len(chunks) {
		workers = len(chunks)
	}
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range workChan {
				results <- work(c.Start, c.End)
			}
		}()
	}

	go func() {
		for _, c := range chunks {
			workChan <- c
		}
		close(workChan)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for err := range results {
		if err != nil {
			return fmt.Errorf("parallel: chunk failed: %w", err)
		}
	}
	return nil
}
