package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/log"
)

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case listState:
		stateCmd = b.updateList(msg)
	case editState:
		stateCmd = b.updateEdit(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd, b.flushSaveError())
}

func (b *statefulBubble) updateList(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.add):
			entry := b.palette.AddRandom()
			b.colorsC.Select(b.palette.Len() - 1)
			log.Infof("added %s (%s)", entry.Name, entry.Value)
			return ui.Notify(fmt.Sprintf("%s %s %s", icon.Get(icon.Add), entry.Name, entry.Value))
		case bubblesKey.Matches(msg, b.keymap.edit):
			item, ok := b.colorsC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			return b.openEdit(item)
		}
	}

	var cmd tea.Cmd
	b.colorsC, cmd = b.colorsC.Update(msg)
	return cmd
}

func (b *statefulBubble) openEdit(item *listItem) tea.Cmd {
	b.palette.Select(item.entry)
	b.inputC.SetValue(b.palette.Draft())
	b.inputC.CursorEnd()
	b.newState(editState)
	return b.inputC.Focus()
}

func (b *statefulBubble) closeEdit() {
	b.inputC.Blur()
	b.inputC.SetValue("")
	b.previousState()
}

func (b *statefulBubble) updateEdit(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.commit):
			selected, draft := b.palette.Selected(), b.palette.Draft()
			changed := b.palette.Commit()
			b.closeEdit()

			entry, ok := selected.Get()
			if !changed || !ok {
				return nil
			}
			log.Infof("edited %s: %s -> %s", entry.Name, entry.Value, draft)
			return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Edit), entry.Name))
		case bubblesKey.Matches(msg, b.keymap.remove):
			selected := b.palette.Selected()
			removed := b.palette.DeleteSelected()
			b.closeEdit()

			entry, ok := selected.Get()
			if !removed || !ok {
				return nil
			}
			log.Infof("deleted %s", entry.Name)
			return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Delete), entry.Name))
		case bubblesKey.Matches(msg, b.keymap.cancel):
			b.palette.Cancel()
			b.closeEdit()
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.palette.UpdateDraft(b.inputC.Value())
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}
	return nil
}

// flushSaveError turns a failed save into a notification.
func (b *statefulBubble) flushSaveError() tea.Cmd {
	if b.saveError == nil {
		return nil
	}

	err := b.saveError
	b.saveError = nil
	return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Fail), err))
}
