package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// choiceFrom runs the command a menu selection produced and extracts the
// resolved choice.
func choiceFrom(t *testing.T, cmd tea.Cmd) MenuChoice {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(MenuChoiceMsg)
	require.True(t, ok, "expected MenuChoiceMsg, got %T", cmd())
	return msg.Choice
}

func TestNewMenuModel(t *testing.T) {
	m := NewMenuModel(themes.Default)

	assert.Equal(t, -1, m.expanded)
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.visible(), 5)
}

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel(themes.Default)

	m, cmd := m.Update(keyRunes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.cursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)

	m, _ = m.Update(keyRunes("k"))
	assert.Equal(t, 1, m.cursor)

	// Up at the top stays put
	m.cursor = 0
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	// Down at the bottom stays put
	m.cursor = len(m.visible()) - 1
	m, _ = m.Update(keyRunes("j"))
	assert.Equal(t, len(m.visible())-1, m.cursor)
}

func TestMenuModel_LeafSelection(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   MenuChoice
	}{
		{
			name:   "initiate setup",
			cursor: 0,
			want:   MenuChoice{Mode: model.ModeInit},
		},
		{
			name:   "add new categories",
			cursor: 1,
			want:   MenuChoice{Mode: model.ModeAdd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(themes.Default)
			m.cursor = tt.cursor

			_, cmd := m.Update(keyEnter())
			assert.Equal(t, tt.want, choiceFrom(t, cmd))
		})
	}
}

func TestMenuModel_SectionExpansion(t *testing.T) {
	m := NewMenuModel(themes.Default)
	m.cursor = 2 // Update Categories

	m, cmd := m.Update(keyEnter())
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.expanded)
	assert.Len(t, m.visible(), 7)

	// Enter again collapses
	m, cmd = m.Update(keyEnter())
	assert.Nil(t, cmd)
	assert.Equal(t, -1, m.expanded)
	assert.Len(t, m.visible(), 5)
}

func TestMenuModel_ChildSelection(t *testing.T) {
	tests := []struct {
		name    string
		section int
		child   int
		want    MenuChoice
	}{
		{
			name:    "update recurring",
			section: 2,
			child:   0,
			want:    MenuChoice{Mode: model.ModeUpdate, Scope: model.ScopePermanent},
		},
		{
			name:    "update temporary",
			section: 2,
			child:   1,
			want:    MenuChoice{Mode: model.ModeUpdate, Scope: model.ScopeTemporary},
		},
		{
			name:    "pay expenses online",
			section: 3,
			child:   0,
			want:    MenuChoice{Payment: true, Kind: model.PaymentOnline},
		},
		{
			name:    "pay expenses offline",
			section: 3,
			child:   1,
			want:    MenuChoice{Payment: true, Kind: model.PaymentOffline},
		},
		{
			name:    "pay loan online",
			section: 4,
			child:   0,
			want:    MenuChoice{Payment: true, Loan: true, Kind: model.PaymentOnline},
		},
		{
			name:    "pay loan offline",
			section: 4,
			child:   1,
			want:    MenuChoice{Payment: true, Loan: true, Kind: model.PaymentOffline},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(themes.Default)
			m.cursor = tt.section

			m, cmd := m.Update(keyEnter())
			assert.Nil(t, cmd)

			for i := 0; i <= tt.child; i++ {
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
			}

			_, cmd = m.Update(keyEnter())
			assert.Equal(t, tt.want, choiceFrom(t, cmd))
		})
	}
}

func TestMenuModel_Reset(t *testing.T) {
	m := NewMenuModel(themes.Default)
	m.cursor = 3
	m, _ = m.Update(keyEnter())
	assert.Equal(t, 3, m.expanded)

	m = m.Reset()
	assert.Equal(t, -1, m.expanded)
	assert.Equal(t, 0, m.cursor)
}

func TestMenuModel_View(t *testing.T) {
	m := NewMenuModel(themes.Default)
	view := m.View()

	for _, label := range []string{
		"Manage Categories",
		"Initiate Setup",
		"Add New Categories",
		"Update Categories",
		"Pay Expenses",
		"Pay Loan",
	} {
		assert.Contains(t, view, label)
	}

	// Children only render when a section is expanded
	assert.NotContains(t, view, "Recurring")
	m.cursor = 2
	m, _ = m.Update(keyEnter())
	view = m.View()
	assert.Contains(t, view, "Recurring")
	assert.Contains(t, view, "Temporary")
}
