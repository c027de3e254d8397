package app

import (
	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/input/mode"
)

// Status line prefixes for save and open outcomes.
const (
	statusSaved = "Saved... "
	statusError = "Error Occurred... "

	statusUnsaved = "No write since last change (add ! to override)"
)

// handleIntent executes the side effects requested by the machine.
// Mode transitions have already been applied by the machine.
func (app *Application) handleIntent(in mode.Intent) error {
	s := app.machine.Session()
	log := app.logger.WithComponent("intent")

	switch in.Kind {
	case mode.IntentNone:
		return nil

	case mode.IntentQuit:
		if s.CloseFocused() {
			log.Debug("closed buffer, %d left", len(s.Buffers()))
			return nil
		}
		return ErrQuit

	case mode.IntentQuitAll:
		return ErrQuit

	case mode.IntentSave, mode.IntentSaveAndQuit:
		app.save(in.Target, in.Kind == mode.IntentSaveAndQuit)
		return nil

	case mode.IntentOpen:
		app.open(in.Target)
		return nil

	case mode.IntentDebugDumpLines:
		msg := s.DebugLines()
		log.Debug("%s", msg)
		s.SetStatus(msg)
		return nil

	case mode.IntentDebugDumpCursor:
		msg := s.DebugCursor()
		log.Debug("%s", msg)
		s.SetStatus(msg)
		return nil

	default:
		log.Debug("%s", in)
		return nil
	}
}

// saveTarget picks the file name for a save: the command argument, then
// the buffer's own path, then the configured default.
func (app *Application) saveTarget(b *buffer.Buffer, arg string) string {
	if arg != "" {
		return arg
	}
	if p := b.FilePath(); p != "" {
		return p
	}
	return app.Config().Editor.DefaultSaveName
}

// save snapshots the focused buffer and hands it to the saver.
func (app *Application) save(arg string, quit bool) {
	b := app.machine.Session().Buffer()
	path := app.saveTarget(b, arg)
	job := app.saver.Submit(b, b.Snapshot(), path, quit)
	app.logger.WithComponent("intent").WithField("job", job.ID).Info("save %s", path)
}

// pollSaves applies finished saves to the session. A buffer without a
// path adopts the target once the write succeeds. A save-and-quit whose
// buffer was edited after the snapshot keeps the buffer open.
func (app *Application) pollSaves() error {
	s := app.machine.Session()
	for _, r := range app.saver.Poll() {
		if r.Err != nil {
			s.SetStatus(statusError + r.Err.Error())
			continue
		}
		b := r.Job.Buffer
		if b.FilePath() == "" {
			b.SetFilePath(r.Job.Path)
		}
		if r.Job.Path == b.FilePath() {
			b.MarkSavedRevision(r.Job.Revision)
		}
		s.SetStatus(statusSaved + "Saved to " + r.Job.Path)
		if r.Job.Quit {
			if b.RevisionID() != r.Job.Revision {
				s.SetStatus(statusUnsaved)
				continue
			}
			if err := app.quitBuffer(b); err != nil {
				return err
			}
		}
	}
	return nil
}

// quitBuffer closes b, or ends the run when it is the last buffer.
func (app *Application) quitBuffer(b *buffer.Buffer) error {
	s := app.machine.Session()
	if len(s.Buffers()) > 1 {
		s.CloseBuffer(b)
		return nil
	}
	return ErrQuit
}

// open focuses the buffer for path, loading it first when it is not open.
func (app *Application) open(path string) {
	s := app.machine.Session()
	for i, open := range s.Buffers() {
		if open.FilePath() == path {
			for s.Focused() != i {
				s.FocusNext()
			}
			return
		}
	}

	b, isNew, err := app.loadBuffer(path)
	if err != nil {
		app.logger.Error("%v", err)
		s.SetStatus(statusError + err.Error())
		return
	}
	s.AddBuffer(b)
	if isNew {
		s.SetStatus("New file: " + path)
	}
}
