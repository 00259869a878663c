// Package tui provides the Bubble Tea board editor and its SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeDuration is how long a notification stays on screen.
const NoticeDuration = 3 * time.Second

// Notice is a transient message shown under the board.
type Notice struct {
	Text  string
	Error bool
	id    int
}

// noticeExpiredMsg clears the notice with the same id. Newer notices
// survive the expiry of older ones.
type noticeExpiredMsg struct {
	id int
}

// expireNoticeCmd returns a command that expires notice id after d.
func expireNoticeCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
