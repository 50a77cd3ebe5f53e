package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/payment"
)

const (
	// noticeVisibility is how long a status notice stays on screen.
	noticeVisibility = 1500 * time.Millisecond
	// successCallbackDelay is the pause between a success notice and the
	// follow-up refresh-and-close, so the notice can be seen.
	successCallbackDelay = 1800 * time.Millisecond

	requestTimeout = 30 * time.Second
)

// loadCategories fetches categories for the given view, stamped with the
// current fetch generation so a superseded response cannot land in a
// newer screen.
func (m Model) loadCategories(target loadTarget, scope string) tea.Cmd {
	client := m.client
	seq := m.loadSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		categories, err := client.GetCategories(ctx, scope)
		return categoriesLoadedMsg{target: target, categories: categories, err: err, seq: seq}
	}
}

// submitEditor dispatches an editor submission to its endpoint.
func (m Model) submitEditor(sub editor.Submission) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		message, err := sub.Send(ctx, client)
		return submitResultMsg{message: message, err: err}
	}
}

// dispatchPayment sends the balance mutation for a validated intent.
func (m Model) dispatchPayment(intent model.PaymentIntent) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		message, err := payment.Dispatch(ctx, client, intent)
		return paymentResultMsg{message: message, err: err}
	}
}

func expireNotice(id int) tea.Cmd {
	return tea.Tick(noticeVisibility, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func successDelay() tea.Cmd {
	return tea.Tick(successCallbackDelay, func(time.Time) tea.Msg {
		return successDelayMsg{}
	})
}
