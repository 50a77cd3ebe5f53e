package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

func keyCtrl(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// noticeFrom runs the command and extracts the notice it produced.
func noticeFrom(t *testing.T, cmd tea.Cmd) NoticeMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(NoticeMsg)
	require.True(t, ok, "expected NoticeMsg, got %T", cmd())
	return msg
}

func testCategories() []model.Category {
	return []model.Category{
		{Name: "savings", Amount: decimal.NewFromInt(1000)},
		{Name: "loan", Amount: decimal.NewFromInt(500)},
		{Name: "groceries", Amount: decimal.NewFromInt(3000)},
	}
}

func TestEditorModel_LoadingIgnoresKeys(t *testing.T) {
	ed := editor.New(model.ModeAdd, "")
	m := NewEditorModel(ed, themes.Default)

	m, cmd := m.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.cursor)

	// esc still closes the screen
	_, cmd = m.Update(keyCtrl(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, EditorClosedMsg{}, cmd())
}

func TestEditorModel_InitSeedsReservedRows(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	rows := ed.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "savings", rows[0].Name)
	assert.Equal(t, "loan", rows[1].Name)

	view := m.View()
	assert.Contains(t, view, "Initiate Setup")
	assert.Contains(t, view, "savings")
	assert.Contains(t, view, "loan")
}

func TestEditorModel_TypingCommitsAmount(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	// Amount field is focused first; type into the savings row.
	for _, r := range "1000" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	assert.Equal(t, "1000", ed.Rows()[0].Amount)
}

func TestEditorModel_FrozenFieldIgnoresTyping(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	// Move to the name field of the reserved savings row.
	m, _ = m.Update(keyCtrl(tea.KeyTab))
	assert.Equal(t, fieldName, m.field)

	m, cmd := m.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, "savings", ed.Rows()[0].Name)
	_ = m
}

func TestEditorModel_AddRow(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	m, cmd := m.Update(keyCtrl(tea.KeyCtrlA))
	assert.Nil(t, cmd)
	assert.Len(t, ed.Rows(), 3)
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, fieldName, m.field)

	for _, r := range "fuel" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	assert.Equal(t, "fuel", ed.Rows()[2].Name)
}

func TestEditorModel_AddRowRejectedInUpdate(t *testing.T) {
	ed := editor.New(model.ModeUpdate, model.ScopeTemporary)
	m := NewEditorModel(ed, themes.Default)
	m = m.SetCategories(testCategories())

	_, cmd := m.Update(keyCtrl(tea.KeyCtrlA))
	notice := noticeFrom(t, cmd)
	assert.True(t, notice.IsError)
	assert.Len(t, ed.Rows(), 3)
}

func TestEditorModel_RemoveReservedRowRejected(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	_, cmd := m.Update(keyCtrl(tea.KeyCtrlD))
	notice := noticeFrom(t, cmd)
	assert.True(t, notice.IsError)
	assert.Contains(t, notice.Text, "cannot be removed")
	assert.Len(t, ed.Rows(), 2)
}

func TestEditorModel_RemoveNewRow(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	m, _ = m.Update(keyCtrl(tea.KeyCtrlA))
	require.Len(t, ed.Rows(), 3)

	m, cmd := m.Update(keyCtrl(tea.KeyCtrlD))
	assert.Nil(t, cmd)
	assert.Len(t, ed.Rows(), 2)
	assert.Equal(t, 1, m.cursor)
}

func TestEditorModel_RemoveOnlyRow(t *testing.T) {
	ed := editor.New(model.ModeAdd, "")
	m := NewEditorModel(ed, themes.Default)
	m = m.SetCategories(nil)

	m, _ = m.Update(keyCtrl(tea.KeyCtrlA))
	require.Len(t, ed.Rows(), 1)

	m, cmd := m.Update(keyCtrl(tea.KeyCtrlD))
	assert.Nil(t, cmd)
	assert.Empty(t, ed.Rows())
	assert.Equal(t, 0, m.cursor)

	// The empty list stays usable: stray input is ignored, removal
	// reports an error, and a new row can still be added.
	m, cmd = m.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.View())

	_, cmd = m.Update(keyCtrl(tea.KeyCtrlD))
	notice := noticeFrom(t, cmd)
	assert.True(t, notice.IsError)

	m, _ = m.Update(keyCtrl(tea.KeyCtrlA))
	assert.Len(t, ed.Rows(), 1)
	assert.Equal(t, 0, m.cursor)
}

func TestEditorModel_SubmitEmptyRejected(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	_, cmd := m.Update(keyCtrl(tea.KeyCtrlS))
	notice := noticeFrom(t, cmd)
	assert.True(t, notice.IsError)
	assert.Contains(t, notice.Text, "valid name and amount")
}

func TestEditorModel_SubmitEmitsSubmission(t *testing.T) {
	ed := editor.New(model.ModeInit, "")
	m := NewEditorModel(ed, themes.Default)

	for _, r := range "1000" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	m, cmd := m.Update(keyCtrl(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	msg, ok := cmd().(EditorSubmitMsg)
	require.True(t, ok, "expected EditorSubmitMsg, got %T", cmd())
	assert.Equal(t, model.ModeInit, msg.Submission.Mode)
	require.Len(t, msg.Submission.Categories, 1)
	assert.Equal(t, "savings", msg.Submission.Categories[0].Name)
	assert.Equal(t, "1000", msg.Submission.Categories[0].Amount)

	// Second submit is latched until the result lands
	m, cmd = m.Update(keyCtrl(tea.KeyCtrlS))
	assert.Nil(t, cmd)

	m = m.SubmitFinished()
	_, cmd = m.Update(keyCtrl(tea.KeyCtrlS))
	assert.NotNil(t, cmd)
}

func TestEditorModel_UpdateScopeRendersFrozenLoan(t *testing.T) {
	ed := editor.New(model.ModeUpdate, model.ScopePermanent)
	m := NewEditorModel(ed, themes.Default)
	m = m.SetCategories(testCategories())

	// Recurring updates never include the loan row
	for _, row := range ed.Rows() {
		assert.NotEqual(t, "loan", row.Name)
	}

	view := m.View()
	assert.Contains(t, view, "Update Recurring Categories")
	assert.NotContains(t, view, "ctrl+a")
}

func TestEditorModel_NavigationCommitsValue(t *testing.T) {
	ed := editor.New(model.ModeUpdate, model.ScopeTemporary)
	m := NewEditorModel(ed, themes.Default)
	m = m.SetCategories(testCategories())

	// The input starts from the fetched amount; append a digit and move on.
	m, _ = m.Update(keyRunes("0"))
	m, _ = m.Update(keyCtrl(tea.KeyDown))

	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "10000", ed.Rows()[0].Amount)
}
