package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/trappedknight/internal/report"
	"github.com/papapumpkin/trappedknight/internal/spiral"
	"github.com/papapumpkin/trappedknight/internal/telemetry"
)

// setFlags sets flags on cmd for the duration of the test and restores their
// defaults afterwards. Tests using it must not run in parallel.
func setFlags(t *testing.T, cmd *cobra.Command, flags map[string]string) {
	t.Helper()
	for name, val := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("unknown flag %q on %s", name, cmd.Name())
		}
		def := f.DefValue
		if err := cmd.Flags().Set(name, val); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			_ = cmd.Flags().Set(name, def)
			f.Changed = false
		})
	}
}

func captureOutput(cmd *cobra.Command) (*bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return &out, &errOut
}

func TestCommands_Registered(t *testing.T) {
	t.Parallel()

	want := map[string]bool{"run": false, "lattice": false, "label": false, "where": false, "tui": false, "telemetry": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestRunCmd_TextOutput(t *testing.T) {
	viper.Reset()
	setFlags(t, runCmd, map[string]string{"limit": "2"})
	out, _ := captureOutput(runCmd)

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun: %v", err)
	}

	// Two moves from the origin reach (2, -1) and (1, 1): ring 2.
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "Lattice:" {
		t.Fatalf("expected lattice header, got %q", lines[0])
	}
	if got := strings.Fields(lines[1]); len(got) != 5 || got[0] != "17" || got[4] != "13" {
		t.Errorf("unexpected first lattice row %q", lines[1])
	}
	for _, substr := range []string{"\nPath:\n", "       1\t(0, 0)\n", "      10\t(2, -1)\n", "       3\t(1, 1)\n"} {
		if !strings.Contains(out.String(), substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, out.String())
		}
	}
}

func TestRunCmd_JSONReport(t *testing.T) {
	viper.Reset()
	setFlags(t, runCmd, map[string]string{"format": "json", "start-x": "3", "start-y": "-2"})
	out, _ := captureOutput(runCmd)

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun: %v", err)
	}

	var r report.Report
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !r.Trapped {
		t.Error("expected a full run to end trapped")
	}
	if r.Start.X != 3 || r.Start.Y != -2 {
		t.Errorf("Start = %+v, want (3, -2)", r.Start)
	}
	if r.Moves != 2100 || r.Final.X != -14 || r.Final.Y != -19 {
		t.Errorf("unexpected summary: moves=%d final=%+v", r.Moves, r.Final)
	}
}

func TestRunCmd_RejectsNegativeLimit(t *testing.T) {
	viper.Reset()
	setFlags(t, runCmd, map[string]string{"limit": "-1"})
	captureOutput(runCmd)

	if err := runRun(runCmd, nil); err == nil {
		t.Fatal("expected error for negative limit")
	}
}

func TestRunCmd_RejectsUnknownFormat(t *testing.T) {
	viper.Reset()
	setFlags(t, runCmd, map[string]string{"format": "xml"})
	captureOutput(runCmd)

	if err := runRun(runCmd, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunCmd_WritesTelemetry(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	setFlags(t, runCmd, map[string]string{"limit": "3", "telemetry": dir})
	captureOutput(runCmd)

	if err := runRun(runCmd, nil); err != nil {
		t.Fatalf("runRun: %v", err)
	}

	path, err := resolveTelemetryPath(dir, "")
	if err != nil {
		t.Fatalf("resolveTelemetryPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var kinds []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var evt telemetry.Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		kinds = append(kinds, evt.Kind)
	}
	want := "run_start,step,step,step,run_done"
	if got := strings.Join(kinds, ","); got != want {
		t.Errorf("kinds = %s, want %s", got, want)
	}

	// The telemetry command prints the same file.
	setFlags(t, telemetryCmd, map[string]string{"dir": dir})
	out, _ := captureOutput(telemetryCmd)
	if err := runTelemetry(telemetryCmd, nil); err != nil {
		t.Fatalf("runTelemetry: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 5 {
		t.Errorf("expected 5 printed events, got %d:\n%s", got, out.String())
	}
	if !strings.Contains(out.String(), "step run=") || !strings.Contains(out.String(), "label=10") {
		t.Errorf("unexpected telemetry output:\n%s", out.String())
	}
}

// lockedBuffer is a bytes.Buffer safe for a command writing in one goroutine
// while the test reads in another.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestTelemetryCmd_Follow(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	path := filepath.Join(dir, "follow.jsonl")
	first := `{"ts":"2025-01-01T10:00:00Z","kind":"run_start","run":"follow","data":{"label":1,"step":0,"x":0,"y":0}}`
	if err := os.WriteFile(path, []byte(first+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	setFlags(t, telemetryCmd, map[string]string{"dir": dir, "run": "follow", "follow": "true"})
	out := &lockedBuffer{}
	telemetryCmd.SetOut(out)
	telemetryCmd.SetErr(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	telemetryCmd.SetContext(ctx)
	t.Cleanup(func() { telemetryCmd.SetContext(context.Background()) })

	done := make(chan error, 1)
	go func() { done <- runTelemetry(telemetryCmd, nil) }()

	if !waitFor(t, 5*time.Second, func() bool { return strings.Contains(out.String(), "run_start run=follow") }) {
		t.Fatalf("existing event not printed, got:\n%s", out.String())
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// The watcher may not be registered yet when the first line lands, so keep
	// appending until one shows up. Every write prints all unread lines.
	appended := false
	for i := 1; i <= 50 && !appended; i++ {
		line := fmt.Sprintf(`{"ts":"2025-01-01T10:00:01Z","kind":"step","run":"follow","data":{"label":%d,"step":%d,"x":2,"y":-1}}`, 10, i)
		if _, err := f.WriteString(line + "\n"); err != nil {
			t.Fatal(err)
		}
		appended = waitFor(t, 100*time.Millisecond, func() bool {
			return strings.Contains(out.String(), "step run=follow label=10 step=1 ")
		})
	}
	if !appended {
		t.Fatalf("appended event not printed, got:\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runTelemetry returned %v after cancel, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runTelemetry did not return after the context was cancelled")
	}
}

func TestLatticeCmd(t *testing.T) {
	out, _ := captureOutput(latticeCmd)

	if err := runLattice(latticeCmd, []string{"1"}); err != nil {
		t.Fatalf("runLattice: %v", err)
	}
	want := "Lattice:\n       5    4    3 \n       6    1    2 \n       7    8    9 \n"
	if out.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", out.String(), want)
	}

	if err := runLattice(latticeCmd, []string{"-1"}); !errors.Is(err, spiral.ErrNegativeRing) {
		t.Errorf("expected ErrNegativeRing, got %v", err)
	}
	if err := runLattice(latticeCmd, []string{"two"}); err == nil {
		t.Error("expected error for non-integer ring")
	}
}

func TestLabelAndWhereCmds(t *testing.T) {
	out, _ := captureOutput(labelCmd)
	if err := runLabel(labelCmd, []string{"-1", "1"}); err != nil {
		t.Fatalf("runLabel: %v", err)
	}
	if out.String() != "(-1, 1)\t5\tring 1 top+1\n" {
		t.Errorf("label output = %q", out.String())
	}

	out, _ = captureOutput(whereCmd)
	if err := runWhere(whereCmd, []string{"10"}); err != nil {
		t.Fatalf("runWhere: %v", err)
	}
	if out.String() != "(2, -1)\t10\tring 2 right+0\n" {
		t.Errorf("where output = %q", out.String())
	}

	if err := runWhere(whereCmd, []string{"0"}); !errors.Is(err, spiral.ErrInvalidLabel) {
		t.Errorf("expected ErrInvalidLabel, got %v", err)
	}
}

func TestResolveTelemetryPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, err := resolveTelemetryPath(dir, ""); err == nil {
		t.Error("expected error for empty directory")
	}
	if err := os.WriteFile(filepath.Join(dir, "r1.jsonl"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := resolveTelemetryPath(dir, "r1")
	if err != nil || got != filepath.Join(dir, "r1.jsonl") {
		t.Errorf("resolveTelemetryPath(r1) = %q, %v", got, err)
	}
	if _, err := resolveTelemetryPath(dir, "missing"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	printEvent(&buf, `{"ts":"2025-01-01T10:11:12Z","kind":"trapped","run":"r1","data":{"step":2015,"label":2084,"x":10,"y":23}}`)
	printEvent(&buf, "not json")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "trapped run=r1 label=2084 step=2015 x=10 y=23") {
		t.Errorf("unexpected line: %q", lines[0])
	}
	if lines[1] != "??? not json" {
		t.Errorf("unexpected fallback line: %q", lines[1])
	}
}

func TestTUICmd_RequiresTTY(t *testing.T) {
	if isStderrTTY() {
		t.Skip("stderr is a terminal")
	}
	if err := runTUI(tuiCmd, nil); err == nil || !strings.Contains(err.Error(), "requires a TTY") {
		t.Errorf("expected TTY error, got %v", err)
	}
}
