// Package components contains the sub-models composing the TUI.
package components

import (
	"github.com/Veraticus/paisa/internal/editor"
	"github.com/Veraticus/paisa/internal/model"
)

// NoticeMsg asks the root model to show a transient status notice.
type NoticeMsg struct {
	Text    string
	IsError bool
}

// MenuChoiceMsg is emitted when the options menu resolves a selection.
type MenuChoiceMsg struct {
	Choice MenuChoice
}

// EditorSubmitMsg carries a validated editor submission to dispatch.
type EditorSubmitMsg struct {
	Submission editor.Submission
}

// EditorClosedMsg is emitted when the user backs out of the editor.
type EditorClosedMsg struct{}

// PaymentSubmitMsg carries a validated payment intent to dispatch.
type PaymentSubmitMsg struct {
	Intent model.PaymentIntent
}

// PaymentClosedMsg is emitted when the user backs out of the payment form.
type PaymentClosedMsg struct{}

// ScannerDoneMsg completes the online hand-off: the user returned from
// the scan stage, or the fallback path fired. The dashboard refreshes in
// response.
type ScannerDoneMsg struct{}
