package tui

import (
	"github.com/Veraticus/paisa/internal/model"
)

// loadTarget names which view a category fetch belongs to, so a response
// arriving after the user moved on can be dropped.
type loadTarget int

const (
	loadDashboard loadTarget = iota
	loadEditor
	loadPayment
)

// Data loading messages. seq identifies the fetch that produced the
// response; responses from superseded fetches are dropped.
type categoriesLoadedMsg struct {
	err        error
	categories []model.Category
	target     loadTarget
	seq        int
}

// Mutation result messages.
type submitResultMsg struct {
	err     error
	message string
}

type paymentResultMsg struct {
	err     error
	message string
}

// Notice lifecycle messages.
type noticeExpiredMsg struct {
	id int
}

// successDelayMsg fires after the success notice has been visible long
// enough; it triggers the dashboard refresh and closes the active view.
type successDelayMsg struct{}
