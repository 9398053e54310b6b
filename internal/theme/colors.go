package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Chat colors
const (
	ColorAccent    Color = "205" // Pink - user messages, spinner
	ColorAIMessage Color = "250" // Default text for AI turns
	ColorTyping    Color = "241" // Gray - typing indicator label
)

// Score colors, thresholds match the result card: >=75 good, >=50 mid
const (
	ColorScoreGood Color = "2"   // Green
	ColorScoreMid  Color = "3"   // Yellow
	ColorScoreBad  Color = "1"   // Red
	ScoreGoodMin         = 75
	ScoreMidMin          = 50
)

// ScoreColor returns the display color for a score value
func ScoreColor(score int) Color {
	switch {
	case score >= ScoreGoodMin:
		return ColorScoreGood
	case score >= ScoreMidMin:
		return ColorScoreMid
	default:
		return ColorScoreBad
	}
}
