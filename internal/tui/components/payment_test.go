package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/payment"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

func TestPaymentModel_LoadingIgnoresKeys(t *testing.T) {
	flow := payment.New(model.PaymentOnline, false)
	m := NewPaymentModel(flow, themes.Default)

	m, cmd := m.Update(keyRunes("x"))
	assert.Nil(t, cmd)

	_, cmd = m.Update(keyCtrl(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, PaymentClosedMsg{}, cmd())
}

func TestPaymentModel_ExcludesLoanFromPicker(t *testing.T) {
	flow := payment.New(model.PaymentOffline, false)
	m := NewPaymentModel(flow, themes.Default)
	m = m.SetCategories(testCategories())

	view := m.View()
	assert.Contains(t, view, "savings")
	assert.Contains(t, view, "groceries")
	assert.NotContains(t, view, "loan")
}

func TestPaymentModel_SubmitWithoutAmountRejected(t *testing.T) {
	flow := payment.New(model.PaymentOffline, false)
	m := NewPaymentModel(flow, themes.Default)
	m = m.SetCategories(testCategories())

	_, cmd := m.Update(keyEnter())
	notice := noticeFrom(t, cmd)
	assert.True(t, notice.IsError)
	assert.Contains(t, notice.Text, "valid category and amount")
	assert.Equal(t, payment.StageForm, flow.Stage())
}

func TestPaymentModel_SubmitEmitsIntent(t *testing.T) {
	flow := payment.New(model.PaymentOnline, false)
	m := NewPaymentModel(flow, themes.Default)
	m = m.SetCategories(testCategories())

	// Select groceries and enter an amount
	m, _ = m.Update(keyCtrl(tea.KeyDown))
	for _, r := range "250" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	m, cmd := m.Update(keyEnter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(PaymentSubmitMsg)
	require.True(t, ok, "expected PaymentSubmitMsg, got %T", cmd())
	assert.Equal(t, "groceries", msg.Intent.Category)
	assert.Equal(t, "250", msg.Intent.RawAmount())
	assert.Equal(t, model.PaymentOnline, msg.Intent.Kind)
	assert.Equal(t, payment.StageSubmitting, flow.Stage())

	// Submit latch holds while the mutation is in flight
	_, cmd = m.Update(keyEnter())
	assert.Nil(t, cmd)
}

func TestPaymentModel_OverdrawRejected(t *testing.T) {
	flow := payment.New(model.PaymentOffline, false)
	m := NewPaymentModel(flow, themes.Default)
	m = m.SetCategories(testCategories())

	// savings holds 1000
	for _, r := range "5000" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	_, cmd := m.Update(keyEnter())
	notice := noticeFrom(t, cmd)
	assert.Contains(t, notice.Text, "Amount exceeds balance for savings")
	assert.Equal(t, payment.StageForm, flow.Stage())
}

func TestPaymentModel_EmptyPickerView(t *testing.T) {
	flow := payment.New(model.PaymentOffline, false)
	m := NewPaymentModel(flow, themes.Default)
	m = m.SetCategories(nil)

	view := m.View()
	assert.Contains(t, view, "No categories with a spendable balance")
}

func TestPaymentModel_Titles(t *testing.T) {
	tests := []struct {
		name   string
		kind   model.PaymentKind
		isLoan bool
		want   string
	}{
		{name: "expense online", kind: model.PaymentOnline, isLoan: false, want: "Pay Expense Online"},
		{name: "expense offline", kind: model.PaymentOffline, isLoan: false, want: "Pay Expense Offline"},
		{name: "loan online", kind: model.PaymentOnline, isLoan: true, want: "Pay Loan Online"},
		{name: "loan offline", kind: model.PaymentOffline, isLoan: true, want: "Pay Loan Offline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := payment.New(tt.kind, tt.isLoan)
			m := NewPaymentModel(flow, themes.Default)
			m = m.SetCategories(testCategories())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}
