package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/tui/themes"
)

// DashboardModel renders the category overview: savings and loan pinned
// on top, the spending categories below.
type DashboardModel struct {
	theme      themes.Theme
	categories []model.Category
	loaded     bool
}

// NewDashboardModel creates an empty dashboard awaiting its first load.
func NewDashboardModel(theme themes.Theme) DashboardModel {
	return DashboardModel{theme: theme}
}

// SetCategories installs freshly fetched categories.
func (m DashboardModel) SetCategories(categories []model.Category) DashboardModel {
	m.categories = categories
	m.loaded = true
	return m
}

// Empty reports whether the account has no categories at all.
func (m DashboardModel) Empty() bool {
	return m.loaded && len(m.categories) == 0
}

// View renders the dashboard body.
func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Dashboard"))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(m.theme.Muted.Render("Loading..."))
		return b.String()
	}

	if len(m.categories) == 0 {
		b.WriteString(m.theme.Bold.Render("No categories found"))
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render("Please initiate categories from the setup menu."))
		return b.String()
	}

	top, rest := model.SplitDashboard(m.categories)

	if len(top) > 0 {
		var cards []string
		for _, c := range top {
			cards = append(cards, m.card(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	for _, c := range rest {
		b.WriteString(m.card(c))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("m menu · r refresh · q quit"))
	return b.String()
}

func (m DashboardModel) card(c model.Category) string {
	label := c.Name
	switch {
	case model.IsSavings(c.Name):
		label = "Savings"
	case model.IsLoan(c.Name):
		label = "Loan"
	}
	body := m.theme.Bold.Render(label) + "  " + m.theme.AmountValue.Render("₹"+c.Amount.String())
	return m.theme.Card.Render(body)
}
