package dash

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyUserMenu   = "u"
	KeyToggleHelp = "?"
	KeyDismiss    = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		m.showUserMenu = false
		return true, nil
	}

	// Esc closes whichever overlay is open
	if key == KeyDismiss {
		if m.showHelp || m.showUserMenu {
			m.showHelp = false
			m.showUserMenu = false
			return true, nil
		}
		return false, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.refresh()

	case KeyUserMenu:
		m.showUserMenu = !m.showUserMenu
		m.showHelp = false
		return true, nil
	}

	return false, nil
}
