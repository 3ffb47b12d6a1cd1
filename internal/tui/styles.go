package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: the knight
	colorSuccess     = lipgloss.Color("#00E676") // Green: running
	colorDanger      = lipgloss.Color("#FF5252") // Red: trapped
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue        = lipgloss.Color("#5B8DEF") // Blue: visited trail
	colorTrailRecent = lipgloss.Color("#B39DDB") // Lavender: latest moves
)

// Board glyphs.
const (
	glyphKnight    = "♞"
	glyphStart     = "◆"
	glyphVisited   = "•"
	glyphCandidate = "○"
	glyphEmpty     = "·"
)

// Status bar styles, visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStateRunning = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	styleStateStopped = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Bold(true)

	styleStateTrapped = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Board cell styles.
var (
	styleCellKnight = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleCellStart = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleCellVisited = lipgloss.NewStyle().
				Foreground(colorBlue)

	styleCellRecent = lipgloss.NewStyle().
			Foreground(colorTrailRecent)

	styleCellCandidate = lipgloss.NewStyle().
				Foreground(colorSuccess)

	styleCellEmpty = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Footer styles with a top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
