// Package report summarises a knight run as a structured document that can
// be written as JSON or TOML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/trappedknight/internal/knight"
)

// ErrUnknownFormat is returned by Encode for formats other than json and toml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Entry is one square of the trail.
type Entry struct {
	Label int `json:"label" toml:"label"`
	X     int `json:"x" toml:"x"`
	Y     int `json:"y" toml:"y"`
}

// Report describes a run: where it started, how far it got, whether the
// knight is trapped, and the full trail.
type Report struct {
	Start          Entry   `json:"start" toml:"start"`
	Final          Entry   `json:"final" toml:"final"`
	Moves          int     `json:"moves" toml:"moves"`
	Trapped        bool    `json:"trapped" toml:"trapped"`
	ContainingRing int     `json:"containing_ring" toml:"containing_ring"`
	Path           []Entry `json:"path" toml:"path"`
}

func entryOf(e knight.Element) Entry {
	return Entry{Label: e.Label, X: e.Point.X, Y: e.Point.Y}
}

// Build reads the current state of p. It does not step the path.
func Build(p *knight.Path) Report {
	elements := p.Elements()
	r := Report{
		Start:          entryOf(p.Start()),
		Final:          entryOf(p.Last()),
		Moves:          len(elements) - 1,
		Trapped:        p.Trapped(),
		ContainingRing: p.ContainingRing().Number,
		Path:           make([]Entry, len(elements)),
	}
	for i, e := range elements {
		r.Path[i] = entryOf(e)
	}
	return r
}

// Encode writes r to w in the given format, "json" or "toml".
func Encode(w io.Writer, r Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("report: encode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}
