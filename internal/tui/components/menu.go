package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

// MenuChoice is a resolved options-menu selection.
type MenuChoice struct {
	Mode    model.EditMode
	Scope   model.UpdateScope
	Kind    model.PaymentKind
	Payment bool
	Loan    bool
}

type menuEntry struct {
	label    string
	children []string
	resolve  func(child string) MenuChoice
}

// MenuModel renders the expandable options menu: category setup on top,
// payment flows below. Sections with children expand on select; leaf
// sections resolve immediately.
type MenuModel struct {
	theme    themes.Theme
	entries  []menuEntry
	expanded int // index of the expanded entry, -1 for none
	cursor   int // index into visibleItems
}

type visibleItem struct {
	entry int
	child int // -1 for the section header itself
}

func paymentChoice(loan bool) func(string) MenuChoice {
	return func(child string) MenuChoice {
		kind := model.PaymentOffline
		if strings.EqualFold(child, "Online") {
			kind = model.PaymentOnline
		}
		return MenuChoice{Payment: true, Loan: loan, Kind: kind}
	}
}

// NewMenuModel creates the options menu.
func NewMenuModel(theme themes.Theme) MenuModel {
	return MenuModel{
		theme:    theme,
		expanded: -1,
		entries: []menuEntry{
			{
				label:   "Initiate Setup",
				resolve: func(string) MenuChoice { return MenuChoice{Mode: model.ModeInit} },
			},
			{
				label:   "Add New Categories",
				resolve: func(string) MenuChoice { return MenuChoice{Mode: model.ModeAdd} },
			},
			{
				label:    "Update Categories",
				children: []string{"Recurring", "Temporary"},
				resolve: func(child string) MenuChoice {
					scope := model.ScopeTemporary
					if strings.EqualFold(child, "Recurring") {
						scope = model.ScopePermanent
					}
					return MenuChoice{Mode: model.ModeUpdate, Scope: scope}
				},
			},
			{
				label:    "Pay Expenses",
				children: []string{"Online", "Offline"},
				resolve:  paymentChoice(false),
			},
			{
				label:    "Pay Loan",
				children: []string{"Online", "Offline"},
				resolve:  paymentChoice(true),
			},
		},
	}
}

func (m MenuModel) visible() []visibleItem {
	var items []visibleItem
	for i, e := range m.entries {
		items = append(items, visibleItem{entry: i, child: -1})
		if i == m.expanded {
			for c := range e.children {
				items = append(items, visibleItem{entry: i, child: c})
			}
		}
	}
	return items
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.visible()

	switch keyMsg.String() {
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		item := items[m.cursor]
		entry := m.entries[item.entry]

		if item.child >= 0 {
			choice := entry.resolve(entry.children[item.child])
			return m, func() tea.Msg { return MenuChoiceMsg{Choice: choice} }
		}
		if len(entry.children) == 0 {
			choice := entry.resolve("")
			return m, func() tea.Msg { return MenuChoiceMsg{Choice: choice} }
		}

		// Toggle the section open or closed.
		if m.expanded == item.entry {
			m.expanded = -1
		} else {
			m.expanded = item.entry
			m.cursor = m.indexOf(item.entry)
		}
	}
	return m, nil
}

func (m MenuModel) indexOf(entry int) int {
	for i, item := range m.visible() {
		if item.entry == entry && item.child == -1 {
			return i
		}
	}
	return 0
}

// Reset collapses all sections and returns the cursor to the top, used
// whenever the menu is dismissed.
func (m MenuModel) Reset() MenuModel {
	m.expanded = -1
	m.cursor = 0
	return m
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Manage Categories"))
	b.WriteString("\n")

	for i, item := range m.visible() {
		entry := m.entries[item.entry]

		var line string
		if item.child >= 0 {
			line = "    • " + entry.children[item.child]
		} else {
			marker := "  "
			if len(entry.children) > 0 {
				if m.expanded == item.entry {
					marker = "▾ "
				} else {
					marker = "▸ "
				}
			}
			line = marker + entry.label
		}

		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString(m.theme.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("enter select · esc back"))
	return b.String()
}
