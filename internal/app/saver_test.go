package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/project/filestore"
	"github.com/dshills/helios/internal/project/vfs"
)

func newTestSaver(t *testing.T) (*Saver, *vfs.MemFS) {
	t.Helper()
	fsys := vfs.NewMemFS()
	if err := fsys.MkdirAll("/w", 0o755); err != nil {
		t.Fatal(err)
	}
	return NewSaver(filestore.NewStore(fsys), nil), fsys
}

func TestSaverWritesSnapshot(t *testing.T) {
	s, fsys := newTestSaver(t)
	b := buffer.NewBufferFromString("first")
	snap := b.Snapshot()
	b.InsertChar(0, 0, '!')

	job := s.Submit(b, snap, "/w/out.txt", true)
	s.Wait()

	results := s.Poll()
	if len(results) != 1 {
		t.Fatalf("Poll() returned %d results", len(results))
	}
	r := results[0]
	if r.Err != nil {
		t.Fatalf("save error: %v", r.Err)
	}
	if r.Job.ID != job.ID || r.Job.Buffer != b || r.Job.Path != "/w/out.txt" || !r.Job.Quit {
		t.Errorf("result job = %+v, want %+v", r.Job, job)
	}
	if r.Job.Revision != snap.RevisionID() {
		t.Error("job revision does not match the snapshot")
	}
	data, err := fsys.ReadFile("/w/out.txt")
	if err != nil || string(data) != "first" {
		t.Errorf("file = %q, %v; want snapshot text", data, err)
	}
	if s.Poll() != nil {
		t.Error("results delivered twice")
	}
}

func TestSaverReportsErrors(t *testing.T) {
	s, fsys := newTestSaver(t)
	boom := errors.New("boom")
	fsys.FailOn(vfs.OpWrite, "/w/.out.txt.tmp", boom)
	b := buffer.NewBufferFromString("x")

	s.Submit(b, b.Snapshot(), "/w/out.txt", false)
	s.Wait()

	results := s.Poll()
	if len(results) != 1 {
		t.Fatalf("Poll() returned %d results", len(results))
	}
	err := results[0].Err
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "save" || opErr.Target != "/w/out.txt" {
		t.Fatalf("err = %v, want save OperationError", err)
	}
	var pathErr *filestore.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("err = %v, want wrapped *filestore.PathError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestSaverJobIDsAreUnique(t *testing.T) {
	s, _ := newTestSaver(t)
	b := buffer.NewBufferFromString("x")

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		job := s.Submit(b, b.Snapshot(), "/w/out.txt", false)
		if seen[job.ID.String()] {
			t.Fatalf("duplicate job id %s", job.ID)
		}
		seen[job.ID.String()] = true
	}
	s.Wait()
	if got := len(s.Poll()); got != 20 {
		t.Errorf("Poll() returned %d results, want 20", got)
	}
}

func TestSaverPollEmpty(t *testing.T) {
	s, _ := newTestSaver(t)
	if got := s.Poll(); got != nil {
		t.Errorf("Poll() = %v, want nil", got)
	}
}

func TestSaverSamePathSavesDoNotInterleave(t *testing.T) {
	tests := []struct {
		name string
		fsys func(t *testing.T) (vfs.VFS, string)
	}{
		{"os", func(t *testing.T) (vfs.VFS, string) {
			return vfs.NewOSFS(), filepath.Join(t.TempDir(), "out.txt")
		}},
		{"memory", func(t *testing.T) (vfs.VFS, string) {
			fsys := vfs.NewMemFS()
			if err := fsys.MkdirAll("/w", 0o755); err != nil {
				t.Fatal(err)
			}
			return fsys, "/w/out.txt"
		}},
	}

	first := strings.Repeat("a", 4<<20)
	second := strings.Repeat("b", 3<<20)
	a := buffer.NewBufferFromString(first)
	b := buffer.NewBufferFromString(second)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, path := tt.fsys(t)
			s := NewSaver(filestore.NewStore(fsys), nil)

			for i := 0; i < 10; i++ {
				s.Submit(a, a.Snapshot(), path, false)
				s.Submit(b, b.Snapshot(), path, false)
				s.Wait()

				for _, r := range s.Poll() {
					if r.Err != nil {
						t.Fatalf("round %d: save error: %v", i, r.Err)
					}
				}
				data, err := fsys.ReadFile(path)
				if err != nil {
					t.Fatalf("round %d: %v", i, err)
				}
				if got := string(data); got != first && got != second {
					t.Fatalf("round %d: file holds %d bytes mixing both saves", i, len(got))
				}
			}
		})
	}
}
