package config

import (
	"sync"

	"github.com/dshills/helios/internal/config/watcher"
)

// Reloader watches the loader's config file and delivers a freshly
// loaded Config after every change. Loads that fail are reported on
// Errors and the previous Config stays in effect.
type Reloader struct {
	loader  *Loader
	watcher *watcher.Watcher
	updates chan Config
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewReloader starts watching the file of l. l must have a file path.
func NewReloader(l *Loader, opts ...watcher.Option) (*Reloader, error) {
	w, err := watcher.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Watch(l.Path()); err != nil {
		_ = w.Close()
		return nil, err
	}

	r := &Reloader{
		loader:  l,
		watcher: w,
		updates: make(chan Config, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	r.wg.Add(1)
	go r.run()
	return r, nil
}

// Updates delivers reloaded configurations. Only the newest unread one
// is kept.
func (r *Reloader) Updates() <-chan Config {
	return r.updates
}

// Errors delivers reload failures. Only the newest unread one is kept.
func (r *Reloader) Errors() <-chan error {
	return r.errors
}

// Close stops watching.
func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.done)
		err = r.watcher.Close()
		r.wg.Wait()
	})
	return err
}

func (r *Reloader) run() {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		case _, ok := <-r.watcher.Events():
			if !ok {
				return
			}
			cfg, err := r.loader.Load()
			if err != nil {
				sendLatest(r.errors, err)
				continue
			}
			sendLatest(r.updates, cfg)
		case err, ok := <-r.watcher.Errors():
			if ok {
				sendLatest(r.errors, err)
			}
		}
	}
}

// sendLatest puts v on a one-slot channel, replacing an unread value.
// The channel has a single writer.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
