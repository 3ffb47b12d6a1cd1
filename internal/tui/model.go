package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/trappedknight/internal/knight"
	"github.com/papapumpkin/trappedknight/internal/spiral"
	"github.com/papapumpkin/trappedknight/internal/telemetry"
)

// Speed bounds for the number of moves taken per tick.
const (
	minStepsPerTick = 1
	maxStepsPerTick = 1024
)

// Chrome lines taken by the status bar and the bordered footer.
const chromeHeight = 3

// Options configures a new Model.
type Options struct {
	Start        spiral.Point
	StepsPerTick int
	Tick         time.Duration
	Emitter      *telemetry.Emitter
}

// Model is the root BubbleTea model. It drives a single knight.Path and only
// ever mutates it through Step.
type Model struct {
	Path         *knight.Path
	Start        spiral.Point
	Keys         KeyMap
	Running      bool
	StepsPerTick int
	Tick         time.Duration
	ShowLabels   bool
	Width        int
	Height       int
	Emitter      *telemetry.Emitter
	Err          error // first telemetry write failure, if any

	gen int
}

// NewModel creates a stopped board with the knight on opts.Start.
func NewModel(opts Options) Model {
	spt := opts.StepsPerTick
	if spt < minStepsPerTick {
		spt = minStepsPerTick
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = 30 * time.Millisecond
	}
	m := Model{
		Path:         knight.New(knight.WithStart(opts.Start)),
		Start:        opts.Start,
		Keys:         DefaultKeyMap(),
		StepsPerTick: min(spt, maxStepsPerTick),
		Tick:         tick,
		Width:        80,
		Height:       24,
		Emitter:      opts.Emitter,
	}
	m.record(telemetry.KindRunStart, m.Path.Start(), 0)
	return m
}

// Init does nothing until the user starts the knight.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Tick, func(t time.Time) tea.Msg {
		return MsgTick{Gen: gen, Time: t}
	})
}

// State reports whether the knight is running, stopped or trapped.
func (m Model) State() State {
	switch {
	case m.Path.Trapped():
		return StateTrapped
	case m.Running:
		return StateRunning
	default:
		return StateStopped
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTick:
		if !m.Running || msg.Gen != m.gen {
			return m, nil
		}
		m.advance(m.StepsPerTick)
		if m.Path.Trapped() {
			m.Running = false
			return m, nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Running = false
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Toggle):
		if m.Running {
			m.Running = false
			m.gen++
			return m, nil
		}
		if m.Path.Trapped() {
			return m, nil
		}
		m.Running = true
		m.gen++
		return m, m.tickCmd()

	case key.Matches(msg, m.Keys.Step):
		if !m.Running {
			m.advance(1)
		}

	case key.Matches(msg, m.Keys.Reset):
		m.reset()

	case key.Matches(msg, m.Keys.Faster):
		m.StepsPerTick = min(m.StepsPerTick*2, maxStepsPerTick)

	case key.Matches(msg, m.Keys.Slower):
		m.StepsPerTick = max(m.StepsPerTick/2, minStepsPerTick)

	case key.Matches(msg, m.Keys.Labels):
		m.ShowLabels = !m.ShowLabels
	}
	return m, nil
}

// advance takes up to n steps through Path.Advance, recording each new move
// and, once, the move that finds the knight trapped.
func (m *Model) advance(n int) {
	if m.Path.Trapped() {
		return
	}
	from := m.Path.Len()
	_, trapped := m.Path.Advance(n)
	moves := m.Path.Elements()
	for i := from; i < len(moves); i++ {
		m.record(telemetry.KindStep, moves[i], i)
	}
	if trapped {
		m.record(telemetry.KindTrapped, m.Path.Last(), m.Path.Len()-1)
	}
}

// reset discards the current path and stops the knight on its start square.
func (m *Model) reset() {
	m.Running = false
	m.gen++
	m.Path = knight.New(knight.WithStart(m.Start))
	m.record(telemetry.KindReset, m.Path.Start(), 0)
}

func (m *Model) record(kind string, e knight.Element, step int) {
	err := m.Emitter.Record(kind, telemetry.Move{Step: step, Label: e.Label, X: e.Point.X, Y: e.Point.Y})
	if err != nil && m.Err == nil {
		m.Err = err
	}
}

// View renders the status bar, the board and the footer.
func (m Model) View() string {
	status := StatusBar{
		Width:        m.Width,
		Moves:        m.Path.Len() - 1,
		Current:      m.Path.Last(),
		Ring:         m.Path.ContainingRing().Number,
		StepsPerTick: m.StepsPerTick,
		State:        m.State(),
	}
	board := Board{
		Width:  m.Width,
		Height: max(m.Height-chromeHeight, 1),
		Labels: m.ShowLabels,
	}
	footer := Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}

	return status.View() + "\n" + board.View(m.Path) + "\n" + footer.View()
}
