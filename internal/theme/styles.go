package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Chat transcript styles
var (
	AIMessageStyle = lipgloss.NewStyle().
			Foreground(ColorAIMessage).
			PaddingRight(8)

	UserMessageStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				PaddingLeft(8).
				Align(lipgloss.Right)

	TypingStyle = lipgloss.NewStyle().
			Foreground(ColorTyping)
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			PaddingLeft(1).
			PaddingRight(1)

	SelectedSessionStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	SessionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)
)

// Result modal styles
var (
	ResultBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 3).
			Align(lipgloss.Center)

	ResultHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	FeedbackStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Width(56)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)
