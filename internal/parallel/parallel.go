// Package parallel runs independent health checks concurrently and
// prints a progress line as each finishes.
package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/msalah0e/gmaps/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of a parallel task.
type Result struct {
	Name    string
	OK      bool
	Err     error
	Output  string
	Elapsed time.Duration
}

// Task is a function that runs in parallel.
type Task struct {
	Name string
	Fn   func() (string, error)
}

// Run executes tasks in parallel with the given concurrency limit.
// Returns results in the order tasks were submitted.
func Run(tasks []Task, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = 4
	}

	results := make([]Result, len(tasks))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			start := time.Now()
			output, err := task.Fn()
			elapsed := time.Since(start)

			mu.Lock()
			if err != nil {
				results[i] = Result{Name: task.Name, Err: err, Output: output, Elapsed: elapsed}
				fmt.Printf("  %s %s %s\n", ui.StatusIcon(false), task.Name, ui.Bad.Sprintf("(%v)", err))
			} else {
				results[i] = Result{Name: task.Name, OK: true, Output: output, Elapsed: elapsed}
				note := output
				if note == "" {
					note = fmt.Sprintf("%.1fs", elapsed.Seconds())
				}
				fmt.Printf("  %s %s %s\n", ui.StatusIcon(true), task.Name, ui.Subtle.Sprint(note))
			}
			mu.Unlock()

			return nil // failures land in results, the group itself never fails
		})
	}

	_ = g.Wait()
	return results
}
