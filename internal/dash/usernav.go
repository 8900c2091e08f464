package dash

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

var (
	avatarStyle = lipgloss.NewStyle().
			Foreground(ColorDarkBg).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	userMenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)
)

// UserInitial returns the avatar initial for a display name: the first
// letter of the name uppercased, or "?" when no usable letter exists.
func UserInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

// renderUserNav renders the avatar badge shown in the header.
func (m Model) renderUserNav() string {
	return avatarStyle.Render(UserInitial(m.user))
}

// renderUserMenu renders the dropdown shown when the user menu is open.
func (m Model) renderUserMenu() string {
	name := strings.TrimSpace(m.user)
	if name == "" {
		name = "anonymous"
	}

	lines := []string{
		ValueStyle.Render(name),
		MutedStyle.Render(m.workspace),
		"",
		LabelStyle.Render("q") + MutedStyle.Render(" sign out and quit"),
		LabelStyle.Render("esc") + MutedStyle.Render(" close"),
	}

	return userMenuStyle.Render(strings.Join(lines, "\n"))
}
