package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/tui/themes"
	"github.com/Veraticus/paisa/internal/upi"
)

// permissionResolvedMsg resolves the scan stage's permission state.
type permissionResolvedMsg struct {
	permission upi.Permission
}

// ScannerModel is the scan stage of an online payment. The terminal has
// no camera, so the decoded QR payload is pasted or typed into an input
// line; the lockout, fallback, and permission semantics are the
// scanner's.
type ScannerModel struct {
	theme   themes.Theme
	scanner *upi.Scanner
	input   textinput.Model
	spinner spinner.Model
}

// NewScannerModel creates the scan stage for one hand-off.
func NewScannerModel(scanner *upi.Scanner, theme themes.Theme) ScannerModel {
	input := textinput.New()
	input.Placeholder = "Paste decoded QR payload..."
	input.CharLimit = 256
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return ScannerModel{
		theme:   theme,
		scanner: scanner,
		input:   input,
		spinner: s,
	}
}

// Init starts the permission check. Terminal input needs no camera
// grant, so it resolves immediately.
func (m ScannerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return permissionResolvedMsg{permission: upi.PermissionGranted} },
	)
}

// Update handles messages.
func (m ScannerModel) Update(msg tea.Msg) (ScannerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case permissionResolvedMsg:
		m.scanner.SetPermission(msg.permission)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ScannerModel) handleKey(msg tea.KeyMsg) (ScannerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Returning from the scan stage is how the user signals the
		// payment is done; there is no confirmation channel.
		return m, func() tea.Msg { return ScannerDoneMsg{} }

	case "ctrl+p":
		if err := m.scanner.Fallback(); err != nil {
			return m, tea.Batch(
				noticeError(common.NewValidationError("app", "Could not launch payment app")),
				func() tea.Msg { return ScannerDoneMsg{} },
			)
		}
		return m, nil

	case "ctrl+r":
		m.scanner.ScanAgain()
		m.input.SetValue("")
		return m, nil

	case "enter":
		if m.scanner.Permission() != upi.PermissionGranted {
			return m, func() tea.Msg { return permissionResolvedMsg{permission: upi.PermissionGranted} }
		}
		data := strings.TrimSpace(m.input.Value())
		if data == "" {
			return m, nil
		}
		if _, err := m.scanner.HandleDecode(data); err != nil {
			m.input.SetValue("")
			return m, noticeError(err)
		}
		return m, nil

	default:
		if m.scanner.Permission() == upi.PermissionGranted && !m.scanner.Scanned() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the scan stage.
func (m ScannerModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Scan UPI QR"))
	b.WriteString("\n")

	switch m.scanner.Permission() {
	case upi.PermissionUnknown:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" Checking camera permissions..."))
		return b.String()

	case upi.PermissionDenied:
		b.WriteString(m.theme.StatusError.Render("Camera access is required to scan QR codes."))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render("enter request permission · ctrl+p open payment app · esc back"))
		return b.String()
	}

	b.WriteString(m.theme.Subtitle.Render("Paying ₹" + m.scanner.Amount()))
	b.WriteString("\n")

	if m.scanner.Scanned() {
		b.WriteString(m.theme.StatusSuccess.Render("Payment link opened."))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render("ctrl+r scan again · ctrl+p open payment app · esc done"))
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render("enter decode · ctrl+p unable to scan? open payment app · esc done"))
	return b.String()
}
