package app

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/project/filestore"
)

// SaveJob describes one background save.
type SaveJob struct {
	// ID correlates the job with its result.
	ID uuid.UUID

	// Buffer is the buffer the snapshot was taken from.
	Buffer *buffer.Buffer

	// Path is the file written.
	Path string

	// Revision is the buffer revision captured in the snapshot.
	Revision buffer.RevisionID

	// Quit closes the buffer or exits once the save succeeds.
	Quit bool
}

// SaveResult reports a finished save.
type SaveResult struct {
	Job SaveJob
	Err error
}

// Saver writes buffer snapshots in background goroutines. Each snapshot
// holds an immutable rope, so the event loop keeps editing while the
// write is in progress. Saves to one path run one after another since
// they share a temp file; saves to different paths run in parallel.
// Results are collected with Poll.
type Saver struct {
	store   *filestore.Store
	logger  *Logger
	results chan SaveResult
	wg      sync.WaitGroup

	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

// NewSaver creates a saver writing through store.
func NewSaver(store *filestore.Store, logger *Logger) *Saver {
	if logger == nil {
		logger = NullLogger
	}
	return &Saver{
		store:   store,
		logger:  logger.WithComponent("saver"),
		results: make(chan SaveResult, 64),
		paths:   make(map[string]*sync.Mutex),
	}
}

// pathLock returns the mutex guarding writes to path.
func (s *Saver) pathLock(path string) *sync.Mutex {
	key := filepath.Clean(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.paths[key]
	if !ok {
		l = new(sync.Mutex)
		s.paths[key] = l
	}
	return l
}

// Submit starts saving snap to path and returns the job.
func (s *Saver) Submit(b *buffer.Buffer, snap *buffer.Snapshot, path string, quit bool) SaveJob {
	job := SaveJob{
		ID:       uuid.New(),
		Buffer:   b,
		Path:     path,
		Revision: snap.RevisionID(),
		Quit:     quit,
	}

	lock := s.pathLock(path)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		lock.Lock()
		s.logger.WithField("job", job.ID).Debug("saving %s (%s)", path, humanize.Bytes(uint64(snap.Len())))
		err := s.store.Save(context.Background(), path, snap)
		lock.Unlock()
		if err != nil {
			err = NewOperationError("save", path, err)
			s.logger.WithField("job", job.ID).Error("%v", err)
		}
		s.results <- SaveResult{Job: job, Err: err}
	}()

	return job
}

// Poll returns the results that have completed since the last call,
// in completion order, without blocking.
func (s *Saver) Poll() []SaveResult {
	var out []SaveResult
	for {
		select {
		case r := <-s.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until every submitted save has finished. Results stay
// queued for Poll.
func (s *Saver) Wait() {
	s.wg.Wait()
}
