// Package transfer copies or moves a single file on a background goroutine
// in fixed-size chunks, publishing progress through a synchronized snapshot.
//
// Cancellation is cooperative: the worker looks at the cancel flag before
// reading each chunk, so a request takes effect within one chunk's I/O. A
// cancelled or failed transfer leaves the partially written destination in
// place.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"zeta/internal/diskspace"
	"zeta/internal/logging"
)

// ChunkSize is the number of bytes read and written per step.
const ChunkSize = 1 << 20

var (
	// ErrDirectory is returned when the source is a directory.
	ErrDirectory = errors.New("directory transfer is not supported")
	// ErrNotRegular is returned for devices, FIFOs, sockets and other
	// special files, which have no fixed size to copy.
	ErrNotRegular = errors.New("only regular files can be transferred")
	// ErrSameFile is returned when source and destination are one file.
	ErrSameFile = errors.New("source and destination are the same file")
	// ErrBusy is returned when a transfer is already running.
	ErrBusy = errors.New("transfer already in progress")
)

// Kind selects what happens to the source once the copy succeeds.
type Kind int

const (
	None Kind = iota
	Copy
	Move
)

func (k Kind) String() string {
	switch k {
	case Copy:
		return "Copy"
	case Move:
		return "Move"
	}
	return "None"
}

// Request describes a transfer of Source into the directory DestDir.
type Request struct {
	Kind      Kind
	Source    string
	DestDir   string
	ChunkSize int
}

// Snapshot is a consistent copy of a transfer's state.
type Snapshot struct {
	Kind            Kind
	Source          string
	Dest            string
	Name            string
	Total           int64
	Done            int64
	CancelRequested bool
	Cancelled       bool
	Finished        bool
	Err             error
}

// Percent returns progress in [0, 100]. An empty file reads 100 once the
// transfer has finished.
func (s Snapshot) Percent() float64 {
	if s.Total <= 0 {
		if s.Finished {
			return 100
		}
		return 0
	}
	p := float64(s.Done) / float64(s.Total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Transfer is one running or finished copy. Kind, Source, Dest and Total are
// fixed before the worker starts; only the worker changes progress fields.
type Transfer struct {
	kind   Kind
	source string
	dest   string
	name   string
	total  int64
	mode   os.FileMode
	chunk  int

	mu              sync.Mutex
	done            int64
	cancelRequested bool
	cancelled       bool
	finished        bool
	err             error

	finishedCh chan struct{}

	// afterChunk runs on the worker after each chunk is accounted for.
	afterChunk func(done int64)
}

// Start validates req, then begins the transfer on a new goroutine. Errors
// from validation are returned synchronously and no goroutine is started.
func Start(ctx context.Context, req Request) (*Transfer, error) {
	t, err := prepare(req)
	if err != nil {
		return nil, err
	}
	go t.run(ctx)
	return t, nil
}

func prepare(req Request) (*Transfer, error) {
	if req.Kind != Copy && req.Kind != Move {
		return nil, fmt.Errorf("transfer kind %v: %w", req.Kind, errors.ErrUnsupported)
	}
	info, err := os.Stat(req.Source)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return nil, ErrDirectory
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", filepath.Base(req.Source), ErrNotRegular)
	}
	name := filepath.Base(req.Source)
	dest := filepath.Join(req.DestDir, name)
	if dinfo, err := os.Stat(dest); err == nil && os.SameFile(info, dinfo) {
		return nil, ErrSameFile
	}
	if err := diskspace.Check(req.DestDir, info.Size()); err != nil {
		return nil, err
	}
	chunk := req.ChunkSize
	if chunk <= 0 {
		chunk = ChunkSize
	}
	return &Transfer{
		kind:       req.Kind,
		source:     req.Source,
		dest:       dest,
		name:       name,
		total:      info.Size(),
		mode:       info.Mode().Perm(),
		chunk:      chunk,
		finishedCh: make(chan struct{}),
	}, nil
}

// Snapshot returns the current state.
func (t *Transfer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Kind:            t.kind,
		Source:          t.source,
		Dest:            t.dest,
		Name:            t.name,
		Total:           t.total,
		Done:            t.done,
		CancelRequested: t.cancelRequested,
		Cancelled:       t.cancelled,
		Finished:        t.finished,
		Err:             t.err,
	}
}

// Cancel asks the worker to stop at the next chunk boundary.
func (t *Transfer) Cancel() {
	t.mu.Lock()
	t.cancelRequested = true
	t.mu.Unlock()
}

// Done is closed once the worker has finished.
func (t *Transfer) Done() <-chan struct{} {
	return t.finishedCh
}

// Wait blocks until the worker finishes or timeout elapses, reporting
// whether it finished.
func (t *Transfer) Wait(timeout time.Duration) bool {
	select {
	case <-t.finishedCh:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (t *Transfer) run(ctx context.Context) {
	log := logging.L().With().Str("kind", t.kind.String()).Str("src", t.source).Str("dst", t.dest).Logger()
	log.Info().Int64("bytes", t.total).Msg("transfer started")

	err := t.copy(ctx)
	snap := t.Snapshot()
	switch {
	case err != nil:
		log.Error().Err(err).Int64("done", snap.Done).Msg("transfer failed")
	case snap.Cancelled:
		log.Info().Int64("done", snap.Done).Msg("transfer cancelled")
	default:
		if t.kind == Move {
			if rerr := os.Remove(t.source); rerr != nil {
				log.Warn().Err(rerr).Msg("source removal failed after move")
			}
		}
		log.Info().Int64("done", snap.Done).Msg("transfer finished")
	}
	t.finish(err)
}

func (t *Transfer) copy(ctx context.Context) error {
	src, err := os.Open(t.source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(t.dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, t.mode)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	buf := make([]byte, t.chunk)
	for {
		if t.stopRequested(ctx) {
			t.mu.Lock()
			t.cancelled = true
			t.mu.Unlock()
			break
		}
		n, rerr := io.ReadFull(src, buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				dst.Close()
				return fmt.Errorf("write destination: %w", werr)
			}
			t.advance(int64(n))
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			dst.Close()
			return fmt.Errorf("read source: %w", rerr)
		}
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

func (t *Transfer) stopRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelRequested
}

func (t *Transfer) advance(n int64) {
	t.mu.Lock()
	t.done += n
	done := t.done
	t.mu.Unlock()
	if t.afterChunk != nil {
		t.afterChunk(done)
	}
}

func (t *Transfer) finish(err error) {
	t.mu.Lock()
	t.err = err
	t.finished = true
	t.mu.Unlock()
	close(t.finishedCh)
}
