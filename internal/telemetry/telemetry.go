// Package telemetry provides a JSONL event stream for knight runs. Every run
// start, move, trap and reset is recorded as a structured JSON event so a run
// can be inspected or followed live from another terminal.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDir is where run files are written when no directory is configured.
const DefaultDir = ".knight/telemetry"

// Event kinds identify the type of telemetry event.
const (
	KindRunStart = "run_start"
	KindStep     = "step"
	KindTrapped  = "trapped"
	KindRunDone  = "run_done"
	KindReset    = "reset"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, the run it belongs to and optional structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	RunID     string    `json:"run,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Move is the data payload of step, trapped and run_start events.
type Move struct {
	Step  int `json:"step"`
	Label int `json:"label"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file  *os.File
	enc   *json.Encoder
	runID string
	now   func() time.Time
	mu    sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
		now:  time.Now,
	}, nil
}

// OpenRun creates dir if needed and returns an Emitter writing to
// <dir>/<runID>.jsonl. Events emitted through Record carry runID.
func OpenRun(dir, runID string) (*Emitter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", dir, err)
	}
	em, err := NewEmitter(filepath.Join(dir, runID+".jsonl"))
	if err != nil {
		return nil, err
	}
	em.runID = runID
	return em, nil
}

// runIDLayout keeps nanoseconds so runs started within the same second get
// their own files. Fixed-width fractions keep run IDs sortable.
const runIDLayout = "20060102T150405.000000000"

// RunID builds a run identifier from the wall-clock start time and the
// knight's starting square.
func RunID(start time.Time, x, y int) string {
	return fmt.Sprintf("%s_%d_%d", start.UTC().Format(runIDLayout), x, y)
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record stamps an event of the given kind with the current time and the
// emitter's run ID, then emits it.
func (e *Emitter) Record(kind string, data any) error {
	if e == nil {
		return nil
	}
	return e.Emit(Event{
		Timestamp: e.now(),
		Kind:      kind,
		RunID:     e.runID,
		Data:      data,
	})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
