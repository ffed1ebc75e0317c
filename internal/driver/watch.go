package driver

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// DefaultSettle is how long Watch waits for a burst of writes to a file
// to end before recompiling it.
const DefaultSettle = 50 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Options
	Settle time.Duration // DefaultSettle if zero
}

// Watch compiles each of paths once, then again whenever it is written
// or recreated, and passes every Result to fn. It returns when ctx is
// done or the watcher fails.
//
// The parent directories are watched rather than the files, so editors
// that save by renaming a temporary file are followed.
func Watch(ctx context.Context, paths []string, opts WatchOptions, fn func(*Result, error)) error {
	if opts.Settle == 0 {
		opts.Settle = DefaultSettle
	}
	log := opts.logger()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "watch %s", p)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return errors.Wrapf(err, "watch %s", dir)
			}
			dirs[dir] = true
		}
	}

	compile := func(path string) {
		opts.Checker = nil
		fn(CompileFile(path, opts.Options))
	}
	for _, p := range paths {
		compile(p)
	}

	// Files with pending changes, by absolute path, and the name
	// each was given as.
	pending := make(map[string]string)
	names := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, _ := filepath.Abs(p)
		names[abs] = p
	}

	timer := time.NewTimer(opts.Settle)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[ev.Name] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debugf("%s changed (%s)", ev.Name, ev.Op)
			pending[ev.Name] = names[ev.Name]
			timer.Reset(opts.Settle)

		case <-timer.C:
			for abs, p := range pending {
				compile(p)
				delete(pending, abs)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watch")
		}
	}
}
