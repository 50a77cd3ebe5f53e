package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

const (
	fieldName = iota
	fieldAmount
)

// EditorModel is the category editing screen. All business rules live in
// the editor state machine; this model only moves the cursor, feeds
// keystrokes into the focused cell, and surfaces validation errors.
type EditorModel struct {
	theme      themes.Theme
	ed         *editor.Editor
	input      textinput.Model
	spinner    spinner.Model
	cursor     int
	field      int
	submitting bool
}

// NewEditorModel creates the editing screen for one session.
func NewEditorModel(ed *editor.Editor, theme themes.Theme) EditorModel {
	input := textinput.New()
	input.CharLimit = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := EditorModel{
		theme:   theme,
		ed:      ed,
		input:   input,
		spinner: s,
		field:   fieldAmount,
	}
	m.syncInput()
	return m
}

// Init returns initial commands.
func (m EditorModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetCategories installs the fetched categories once they arrive.
func (m EditorModel) SetCategories(categories []model.Category) EditorModel {
	m.ed.SetFetched(categories)
	m.cursor = 0
	m.syncInput()
	return m
}

// SubmitFinished clears the submitting latch after a result lands.
func (m EditorModel) SubmitFinished() EditorModel {
	m.submitting = false
	return m
}

func (m *EditorModel) editable() bool {
	if m.field == fieldName {
		return m.ed.NameEditable(m.cursor)
	}
	return m.ed.AmountEditable(m.cursor)
}

func (m *EditorModel) cellValue() string {
	rows := m.ed.Rows()
	if m.cursor >= len(rows) {
		return ""
	}
	if m.field == fieldName {
		return rows[m.cursor].Name
	}
	return rows[m.cursor].Amount
}

func (m *EditorModel) syncInput() {
	if m.field == fieldName {
		m.input.Placeholder = "Category name"
	} else {
		m.input.Placeholder = "Amount"
	}
	m.input.SetValue(m.cellValue())
	m.input.CursorEnd()
	if m.editable() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *EditorModel) commit() {
	if !m.editable() {
		return
	}
	if m.field == fieldName {
		m.ed.SetName(m.cursor, m.input.Value())
	} else {
		m.ed.SetAmount(m.cursor, m.input.Value())
	}
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.ed.Loaded() {
			if msg.String() == "esc" {
				return m, func() tea.Msg { return EditorClosedMsg{} }
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	rowCount := len(m.ed.Rows())

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return EditorClosedMsg{} }

	case "up", "shift+tab":
		m.commit()
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncInput()

	case "down", "enter":
		m.commit()
		if m.cursor < rowCount-1 {
			m.cursor++
		}
		m.syncInput()

	case "tab":
		m.commit()
		m.field = (m.field + 1) % 2
		m.syncInput()

	case "ctrl+a":
		m.commit()
		if err := m.ed.AddRow(); err != nil {
			return m, noticeError(err)
		}
		m.cursor = len(m.ed.Rows()) - 1
		m.field = fieldName
		m.syncInput()

	case "ctrl+d":
		m.commit()
		if err := m.ed.RemoveRow(m.cursor); err != nil {
			return m, noticeError(err)
		}
		// Removing the last row must not leave the cursor below zero.
		if m.cursor >= len(m.ed.Rows()) {
			m.cursor = len(m.ed.Rows()) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.syncInput()

	case "ctrl+s":
		if m.submitting {
			return m, nil
		}
		m.commit()
		sub, err := m.ed.Build()
		if err != nil {
			return m, noticeError(err)
		}
		m.submitting = true
		return m, func() tea.Msg { return EditorSubmitMsg{Submission: sub} }

	default:
		if m.editable() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.commit()
			return m, cmd
		}
	}
	return m, nil
}

func noticeError(err error) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: err.Error(), IsError: true}
	}
}

// View renders the editing screen.
func (m EditorModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title()))
	b.WriteString("\n")

	if !m.ed.Loaded() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" Loading categories..."))
		return b.String()
	}

	for i, row := range m.ed.Rows() {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" Submitting..."))
	} else {
		b.WriteString(m.theme.Muted.Render(m.help()))
	}
	return b.String()
}

func (m EditorModel) renderRow(i int, row model.Row) string {
	name := row.Name
	if name == "" {
		name = m.theme.Muted.Render("(unnamed)")
	} else if !m.ed.NameEditable(i) {
		name = m.theme.Frozen.Render(name)
	}

	amount := row.Amount
	if amount == "" {
		amount = m.theme.Muted.Render("—")
	} else if !m.ed.AmountEditable(i) {
		amount = m.theme.Frozen.Render(amount)
	}

	if i == m.cursor {
		cell := m.input.View()
		if m.field == fieldName {
			name = cell
		} else {
			amount = cell
		}
		return m.theme.Selected.Render("> ") + fmt.Sprintf("%-30s %s", name, amount)
	}
	return fmt.Sprintf("  %-30s %s", name, amount)
}

func (m EditorModel) title() string {
	switch m.ed.Mode() {
	case model.ModeInit:
		return "Initiate Setup"
	case model.ModeAdd:
		return "Add New Categories"
	default:
		if m.ed.Scope() == model.ScopePermanent {
			return "Update Recurring Categories"
		}
		return "Update Temporary Categories"
	}
}

func (m EditorModel) help() string {
	if m.ed.CanAddRows() {
		return "tab field · ctrl+a add · ctrl+d remove · ctrl+s submit · esc back"
	}
	return "tab field · ctrl+s submit · esc back"
}
