package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg asks the model to clear the footer error the tick was
// scheduled for. The generation stamp keeps a stale tick from wiping a
// newer error that replaced the original in the meantime.
type clearErrorMsg struct {
	generation int
}

// ErrorManager owns the footer error line: the latest failure reported by a
// controller operation, auto-cleared after the configured delay.
type ErrorManager struct {
	err        error
	generation int
	clearDelay time.Duration
}

// NewErrorManager creates a manager whose errors clear after clearDelay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError replaces the displayed error. Clear ticks already scheduled for
// the previous error become stale.
func (em *ErrorManager) SetError(err error) {
	em.err = err
	em.generation++
}

// Clear drops the error when the tick belongs to it; stale ticks for
// already-replaced errors are ignored
func (em *ErrorManager) Clear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.err = nil
	}
}

// GetError returns the error currently shown in the footer, if any
func (em *ErrorManager) GetError() error {
	return em.err
}

// ClearAfterDelay schedules the auto-clear tick for the current error
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	generation := em.generation
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}
