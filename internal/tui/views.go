package tui

// View renders the current screen with the notice bar above it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case StateMenu:
		body = m.menu.View()
	case StateEditor:
		body = m.editorView.View()
	case StatePayment:
		body = m.paymentView.View()
	case StateScanner:
		body = m.scannerView.View()
	default:
		body = m.dashboard.View()
	}

	if m.notice == "" {
		return "\n" + body
	}

	bar := m.theme.StatusInfo.Render(m.notice)
	if m.noticeError {
		bar = m.theme.StatusError.Render(m.notice)
	}
	return bar + "\n\n" + body
}
