package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/payment"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

// PaymentModel is the payment form: a category picker and an amount
// field. Validation and stage transitions live in the payment flow; the
// model projects them.
type PaymentModel struct {
	theme    themes.Theme
	flow     *payment.Flow
	amount   textinput.Model
	spinner  spinner.Model
	selected int
}

// NewPaymentModel creates the payment form for one flow.
func NewPaymentModel(flow *payment.Flow, theme themes.Theme) PaymentModel {
	amount := textinput.New()
	amount.Placeholder = "Amount"
	amount.CharLimit = 12
	amount.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return PaymentModel{
		theme:   theme,
		flow:    flow,
		amount:  amount,
		spinner: s,
	}
}

// Init returns initial commands.
func (m PaymentModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetCategories installs the fetched categories once they arrive.
func (m PaymentModel) SetCategories(categories []model.Category) PaymentModel {
	m.flow.SetFetched(categories)
	m.selected = 0
	return m
}

// Flow exposes the underlying payment flow.
func (m PaymentModel) Flow() *payment.Flow {
	return m.flow
}

// Update handles messages.
func (m PaymentModel) Update(msg tea.Msg) (PaymentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.flow.Stage() == payment.StageLoading {
			if msg.String() == "esc" {
				return m, func() tea.Msg { return PaymentClosedMsg{} }
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PaymentModel) handleKey(msg tea.KeyMsg) (PaymentModel, tea.Cmd) {
	categories := m.flow.Categories()

	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return PaymentClosedMsg{} }

	case "up":
		if m.selected > 0 {
			m.selected--
		}

	case "down":
		if m.selected < len(categories)-1 {
			m.selected++
		}

	case "enter", "ctrl+s":
		if m.flow.Stage() == payment.StageSubmitting {
			return m, nil
		}
		var selected string
		if m.selected < len(categories) {
			selected = categories[m.selected].Name
		}
		intent, err := m.flow.Submit(selected, strings.TrimSpace(m.amount.Value()))
		if err != nil {
			return m, noticeError(err)
		}
		return m, func() tea.Msg { return PaymentSubmitMsg{Intent: intent} }

	default:
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the payment form.
func (m PaymentModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title()))
	b.WriteString("\n")

	if m.flow.Stage() == payment.StageLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" Loading categories..."))
		return b.String()
	}

	categories := m.flow.Categories()
	if len(categories) == 0 {
		b.WriteString(m.theme.Muted.Render("No categories with a spendable balance."))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render("esc back"))
		return b.String()
	}

	b.WriteString(m.theme.Subtitle.Render("Select Category"))
	b.WriteString("\n")
	for i, c := range categories {
		line := fmt.Sprintf("%s (₹%s)", c.Name, c.Amount.String())
		if i == m.selected {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString(m.theme.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter Amount"))
	b.WriteString("\n")
	b.WriteString(m.amount.View())
	b.WriteString("\n\n")

	if m.flow.Stage() == payment.StageSubmitting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" Processing..."))
	} else {
		b.WriteString(m.theme.Muted.Render("↑/↓ category · enter submit · esc back"))
	}
	return b.String()
}

func (m PaymentModel) title() string {
	what := "Pay Expense"
	if m.flow.IsLoanPayment() {
		what = "Pay Loan"
	}
	how := "Offline"
	if m.flow.Kind() == model.PaymentOnline {
		how = "Online"
	}
	return what + " " + how
}
