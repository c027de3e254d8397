// Package app is the host of the editing engine. It owns the terminal
// backend, feeds key presses to the mode machine, executes the intents
// the machine returns and draws the result.
package app

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/input/mode"
	"github.com/dshills/helios/internal/project/filestore"
	"github.com/dshills/helios/internal/project/vfs"
	"github.com/dshills/helios/internal/renderer/backend"
)

// DefaultFrameInterval is the redraw and save polling period.
const DefaultFrameInterval = time.Second / 60

// ConfigSource delivers live configuration reloads. *config.Reloader
// implements it.
type ConfigSource interface {
	Updates() <-chan config.Config
	Errors() <-chan error
}

// Options configures the application.
type Options struct {
	// Files are opened on startup, the first one focused. Missing files
	// become empty buffers associated with their path.
	Files []string

	// Config is the resolved configuration. Zero value means defaults.
	Config *config.Config

	// Reloads delivers configuration changes while running. Optional.
	Reloads ConfigSource

	// FS is the file system documents are read from and saved to.
	// Defaults to the OS file system.
	FS vfs.VFS

	// Backend is the terminal. Required by Run.
	Backend backend.Backend

	// Logger defaults to GetLogger().
	Logger *Logger

	// FrameInterval overrides DefaultFrameInterval.
	FrameInterval time.Duration
}

// Application is the central coordinator of the editor.
type Application struct {
	mu sync.Mutex

	cfg     config.Config
	logger  *Logger
	backend backend.Backend
	store   *filestore.Store
	saver   *Saver
	machine *mode.Machine
	reloads ConfigSource
	frame   time.Duration

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates an Application and opens the initial files.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = vfs.NewOSFS()
	}
	frame := opts.FrameInterval
	if frame <= 0 {
		frame = DefaultFrameInterval
	}

	app := &Application{
		cfg:     cfg,
		logger:  logger,
		backend: opts.Backend,
		store:   filestore.NewStore(fsys),
		reloads: opts.Reloads,
		frame:   frame,
		done:    make(chan struct{}),
	}
	app.saver = NewSaver(app.store, logger)

	var buffers []*buffer.Buffer
	var notes []string
	for _, path := range opts.Files {
		b, isNew, err := app.loadBuffer(path)
		if err != nil {
			return nil, err
		}
		if isNew {
			notes = append(notes, "New file: "+path)
		}
		buffers = append(buffers, b)
	}
	if len(buffers) == 0 {
		buffers = append(buffers, app.newBuffer())
	}

	session := mode.NewSession(buffers, mode.WithStatusTimeout(cfg.Editor.StatusTimeout))
	if len(notes) > 0 {
		session.SetStatus(notes[0])
	}
	app.machine = mode.NewMachine(session)
	app.machine.OnChange(func(from, to string) {
		app.logger.WithComponent("mode").Debug("%s -> %s", from, to)
	})

	return app, nil
}

func (app *Application) bufferOptions() []buffer.Option {
	return []buffer.Option{
		buffer.WithTabWidth(app.cfg.Editor.TabWidth),
		buffer.WithUndoLimit(app.cfg.Editor.UndoLimit),
	}
}

func (app *Application) newBuffer(opts ...buffer.Option) *buffer.Buffer {
	return buffer.NewBuffer(append(app.bufferOptions(), opts...)...)
}

// loadBuffer reads path, or creates an empty buffer for it when the file
// does not exist yet.
func (app *Application) loadBuffer(path string) (*buffer.Buffer, bool, error) {
	b, err := app.store.Load(path, app.bufferOptions()...)
	if err == nil {
		app.logger.Info("opened %s (%d lines)", path, b.LineCount())
		return b, false, nil
	}
	if filestore.IsNotFound(err) {
		return app.newBuffer(buffer.WithFilePath(path)), true, nil
	}
	return nil, false, NewOperationError("open", path, err)
}

// Run initializes the backend and processes events until quit.
// Blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.saver.Wait()

	app.logger.Info("started with %d buffer(s)", len(app.machine.Session().Buffers()))
	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		app.logger.Info("quit")
		return nil
	}
	return err
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration in effect.
func (app *Application) Config() config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Machine returns the mode machine. It must only be used from the
// goroutine running the event loop, or after Run returned.
func (app *Application) Machine() *mode.Machine {
	return app.machine
}

// Session returns the editing session. The same rules as Machine apply.
func (app *Application) Session() *mode.Session {
	return app.machine.Session()
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// applyConfig puts a reloaded configuration into effect.
func (app *Application) applyConfig(cfg config.Config) {
	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	s := app.machine.Session()
	s.SetStatusTimeout(cfg.Editor.StatusTimeout)
	for _, b := range s.Buffers() {
		b.SetUndoLimit(cfg.Editor.UndoLimit)
	}
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.logger.WithComponent("config").Info("reloaded")
}
