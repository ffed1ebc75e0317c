package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CheckFiles compiles paths concurrently, each with its own Checker, and
// returns the results in the order of paths. jobs bounds the number of
// files in flight; zero means GOMAXPROCS.
//
// A file that cannot be read, or that makes the compiler itself fail,
// cancels the batch and its error is returned. Syntax and semantic
// problems do not.
func CheckFiles(ctx context.Context, paths []string, opts Options, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Each file needs its own scope tree.
	opts.Checker = nil

	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := CompileFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed reports whether any result has errors.
func Failed(results []*Result) bool {
	for _, r := range results {
		if r != nil && r.Failed() {
			return true
		}
	}
	return false
}
