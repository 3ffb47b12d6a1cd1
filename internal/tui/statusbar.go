package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/trappedknight/internal/knight"
)

// State is the run state shown in the status bar.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateTrapped
)

// String returns the upper-case badge text for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateTrapped:
		return "TRAPPED"
	default:
		return "STOPPED"
	}
}

// StatusBar renders the persistent top bar: move count, the knight's square,
// ring, speed and run state.
type StatusBar struct {
	Width        int
	Moves        int
	Current      knight.Element
	Ring         int
	StepsPerTick int
	State        State
}

// View renders the status bar as a single line. Narrow terminals drop the
// ring and speed segments.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	segments := []string{
		styleStatusLabel.Render(glyphKnight + " KNIGHT"),
		segment("move", fmt.Sprintf("%d", s.Moves)),
		segment("at", fmt.Sprintf("%d %s", s.Current.Label, s.Current.Point)),
	}
	if !compact {
		segments = append(segments,
			segment("ring", fmt.Sprintf("%d", s.Ring)),
			segment("speed", fmt.Sprintf("%d/tick", s.StepsPerTick)),
		)
	}
	segments = append(segments, s.renderState())

	return styleStatusBar.Width(max(s.Width, 0)).Render(strings.Join(segments, "  "))
}

func segment(label, value string) string {
	return styleStatusLabel.Render(label) + " " + styleStatusValue.Render(value)
}

func (s StatusBar) renderState() string {
	var style lipgloss.Style
	switch s.State {
	case StateRunning:
		style = styleStateRunning
	case StateTrapped:
		style = styleStateTrapped
	default:
		style = styleStateStopped
	}
	return style.Render(s.State.String())
}
