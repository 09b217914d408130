package jobs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"printfmt"
)

// Result содержит результат рендеринга одного задания.
type Result struct {
	Job    Job
	Output []byte // rendered bytes, ownership with the caller
	Count  int
	Err    error
}

// Run renders every job of the manifest, up to workers at a time
// (NumCPU when workers <= 0). Formatting failures land in the per-job
// Result; only context cancellation aborts the whole run. Results come
// back in manifest order regardless of completion order.
func Run(ctx context.Context, f *File, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(f.Job) {
		workers = len(f.Job)
	}

	results := make([]Result, len(f.Job))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range f.Job {
		g.Go(func(i int, job Job) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				var out []byte
				n, err := printfmt.Asprintf(&out, job.Template, job.Args...)
				results[i] = Result{Job: job, Output: out, Count: n, Err: err}
				return nil
			}
		}(i, job))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
