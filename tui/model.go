package tui

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Lines used by the title and the status line.
const chrome = 2

// Model is a bubbletea model that types into a box input.
type Model struct {
	Title string

	widget  *boxedit.Widget
	host    *view.Host
	display *Display

	width, height int
	submitted     bool
}

func NewModel(w *boxedit.Widget) Model {
	m := Model{
		Title:   "Enter code",
		widget:  w,
		host:    view.NewHost(w),
		display: NewDisplay(0, 0),
		width:   80,
		height:  24,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		ed := m.widget.Editable()
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.Complete() {
				m.submitted = true
				return m, tea.Quit
			}
		case tea.KeyBackspace, tea.KeyDelete:
			ed.Backspace()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if ed.Nr() >= m.widget.Preferences().Length {
					break
				}
				ed.Append(string(r))
			}
		}
	}
	return m, nil
}

// layout places the widget one cell in from the left under the title.
func (m *Model) layout() {
	r := m.host.Layout(image.Pt(1, 0),
		view.MakeMeasureSpec(m.width-2, view.AtMost),
		view.MakeMeasureSpec(m.height-chrome, view.AtMost))
	m.display.Resize(m.width, r.Max.Y)
	m.widget.Invalidate()
}

func (m Model) View() string {
	m.display.screen.clear()
	m.host.Draw(m.display.ScreenImage())

	status := "type to fill the boxes, enter to submit, esc to quit"
	if m.submitted {
		status = "submitted"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title),
		m.display.Render(),
		statusStyle.Render(status),
	)
}

// Text returns what has been typed.
func (m Model) Text() string { return m.widget.Text() }

// Complete reports whether every box has a character.
func (m Model) Complete() bool {
	return m.widget.Editable().Nr() >= m.widget.Preferences().Length
}

// Submitted reports whether the user accepted a complete entry.
func (m Model) Submitted() bool { return m.submitted }

// Screen returns the cells drawn by the last View as plain text.
func (m Model) Screen() string { return m.display.Plain() }
