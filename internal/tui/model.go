package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/config"
	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/payment"
	"github.com/Veraticus/paisa/internal/tui/components"
	"github.com/Veraticus/paisa/internal/tui/themes"
	"github.com/Veraticus/paisa/internal/upi"
)

// State represents the current state of the TUI.
type State int

const (
	StateDashboard State = iota
	StateMenu
	StateEditor
	StatePayment
	StateScanner
)

// Model holds the main TUI state. Each screen is a sub-model; the root
// coordinates transitions and runs the async API commands.
type Model struct {
	theme    themes.Theme
	keymap   KeyMap
	client   *api.Client
	cfg      config.Config
	launcher upi.Launcher

	state       State
	dashboard   components.DashboardModel
	menu        components.MenuModel
	editorView  components.EditorModel
	paymentView components.PaymentModel
	scannerView components.ScannerModel

	notice      string
	noticeError bool
	noticeID    int
	loadSeq     int

	width    int
	height   int
	quitting bool
}

// newModel creates the root model.
func newModel(cfg config.Config, client *api.Client, launcher upi.Launcher) Model {
	theme := themes.Default
	return Model{
		theme:     theme,
		keymap:    DefaultKeyMap(),
		client:    client,
		cfg:       cfg,
		launcher:  launcher,
		state:     StateDashboard,
		dashboard: components.NewDashboardModel(theme),
		menu:      components.NewMenuModel(theme),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadCategories(loadDashboard, ""),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}

	case categoriesLoadedMsg:
		return m.handleCategoriesLoaded(msg)

	case components.NoticeMsg:
		return m.showNotice(msg.Text, msg.IsError)

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case components.MenuChoiceMsg:
		return m.handleMenuChoice(msg.Choice)

	case components.EditorSubmitMsg:
		return m, m.submitEditor(msg.Submission)

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case components.EditorClosedMsg, components.PaymentClosedMsg:
		m.state = StateMenu
		m.menu = m.menu.Reset()
		return m, nil

	case components.PaymentSubmitMsg:
		return m, m.dispatchPayment(msg.Intent)

	case paymentResultMsg:
		return m.handlePaymentResult(msg)

	case components.ScannerDoneMsg:
		return m.closeAndRefresh()

	case successDelayMsg:
		return m.closeAndRefresh()
	}

	return m.routeToActive(msg)
}

// handleGlobalKeys processes keys that do not belong to the active
// screen. Text inputs own most keys, so only the dashboard exposes the
// single-letter shortcuts.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit, true
	}

	if m.state != StateDashboard {
		if m.state == StateMenu && key.Matches(msg, m.keymap.Back) {
			m.state = StateDashboard
			m.menu = m.menu.Reset()
			return m, nil, true
		}
		model, cmd := m.routeToActive(msg)
		return model, cmd, true
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, m.keymap.Menu):
		m.state = StateMenu
		return m, nil, true
	case key.Matches(msg, m.keymap.Refresh):
		m.loadSeq++
		return m, m.loadCategories(loadDashboard, ""), true
	}
	return m, nil, false
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateMenu:
		m.menu, cmd = m.menu.Update(msg)
	case StateEditor:
		m.editorView, cmd = m.editorView.Update(msg)
	case StatePayment:
		m.paymentView, cmd = m.paymentView.Update(msg)
	case StateScanner:
		m.scannerView, cmd = m.scannerView.Update(msg)
	default:
	}
	return m, cmd
}

func (m Model) showNotice(text string, isError bool) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeError = isError
	m.noticeID++
	return m, expireNotice(m.noticeID)
}

func (m Model) handleCategoriesLoaded(msg categoriesLoadedMsg) (tea.Model, tea.Cmd) {
	// A superseded fetch stays inert even when the state looks right
	// again, so a late response from a dismissed editor cannot land in
	// the one opened after it.
	if msg.seq != m.loadSeq {
		return m, nil
	}

	if msg.err != nil {
		return m.showNotice(common.SurfaceMessage(msg.err, "Failed to load categories."), true)
	}

	switch msg.target {
	case loadDashboard:
		m.dashboard = m.dashboard.SetCategories(msg.categories)
		if m.state == StateDashboard && m.dashboard.Empty() {
			return m.showNotice("No categories found. Please initiate categories to begin.", false)
		}
	case loadEditor:
		if m.state == StateEditor {
			m.editorView = m.editorView.SetCategories(msg.categories)
		}
	case loadPayment:
		if m.state == StatePayment {
			m.paymentView = m.paymentView.SetCategories(msg.categories)
		}
	}
	return m, nil
}

func (m Model) handleMenuChoice(choice components.MenuChoice) (tea.Model, tea.Cmd) {
	if choice.Payment {
		flow := payment.New(choice.Kind, choice.Loan)
		m.paymentView = components.NewPaymentModel(flow, m.theme)
		m.state = StatePayment
		m.loadSeq++
		return m, tea.Batch(m.paymentView.Init(), m.loadCategories(loadPayment, ""))
	}

	ed := editor.New(choice.Mode, choice.Scope)
	m.editorView = components.NewEditorModel(ed, m.theme)
	m.state = StateEditor

	cmds := []tea.Cmd{m.editorView.Init()}
	if !ed.Loaded() {
		scope := ""
		if ed.RecurringOnly() {
			scope = api.ScopeRecurring
		}
		m.loadSeq++
		cmds = append(cmds, m.loadCategories(loadEditor, scope))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	// A result landing after the editor was dismissed stays inert.
	if m.state != StateEditor {
		return m, nil
	}
	m.editorView = m.editorView.SubmitFinished()

	if msg.err != nil {
		return m.showNotice(common.SurfaceMessage(msg.err, "Something went wrong!"), true)
	}

	text := msg.message
	if text == "" {
		text = "Action completed successfully!"
	}
	model, cmd := m.showNotice(text, false)
	return model, tea.Batch(cmd, successDelay())
}

func (m Model) handlePaymentResult(msg paymentResultMsg) (tea.Model, tea.Cmd) {
	if m.state != StatePayment {
		return m, nil
	}

	flow := m.paymentView.Flow()
	stage := flow.HandleResult(msg.err)

	if msg.err != nil {
		return m.showNotice(common.SurfaceMessage(msg.err, "Payment failed"), true)
	}

	text := msg.message
	if text == "" {
		text = "Payment processed successfully"
	}
	model, noticeCmd := m.showNotice(text, false)
	next := model.(Model)

	if stage == payment.StageScan {
		scanner := upi.NewScanner(
			flow.Intent().RawAmount(),
			next.cfg.Currency,
			next.cfg.PaymentApp,
			next.launcher,
			nil,
		)
		next.scannerView = components.NewScannerModel(scanner, next.theme)
		next.state = StateScanner
		return next, tea.Batch(noticeCmd, next.scannerView.Init())
	}

	return next, tea.Batch(noticeCmd, successDelay())
}

// closeAndRefresh is the shared success callback: reload the dashboard
// and return to it.
func (m Model) closeAndRefresh() (tea.Model, tea.Cmd) {
	m.state = StateDashboard
	m.menu = m.menu.Reset()
	m.loadSeq++
	return m, m.loadCategories(loadDashboard, "")
}
