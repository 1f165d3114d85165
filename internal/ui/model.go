// Package ui renders short-lived status messages at the bottom of a view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	generation   int
}

// NotificationMsg carries text to show.
type NotificationMsg string

// ClearNotificationMsg hides the notification it was scheduled for.
type ClearNotificationMsg struct {
	generation int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// Update consumes notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.generation++
		generation := m.generation
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{generation: generation}
		})
	case ClearNotificationMsg:
		// A newer notification outlives the timer of an older one.
		if msg.generation == m.generation {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
