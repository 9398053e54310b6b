package ui

// Completion messages for asynchronous controller operations. Each remote
// call runs in a tea.Cmd goroutine; its message carries only the error, the
// resulting state is read back from controller snapshots when rendering.

// sessionsLoadedMsg is sent when startup rehydration completes
type sessionsLoadedMsg struct {
	err error
}

// interviewStartedMsg is sent when a start-interview call completes
type interviewStartedMsg struct {
	err error
}

// answerSubmittedMsg is sent when an answer round-trip completes
type answerSubmittedMsg struct {
	err error
}

// interviewFinishedMsg is sent when a finish-early call completes
type interviewFinishedMsg struct {
	err error
}

// sessionDeletedMsg is sent when a delete-session call completes
type sessionDeletedMsg struct {
	id  string
	err error
}
