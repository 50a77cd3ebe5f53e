// Package editor implements the category editing state machine: which
// rows are visible, which fields are editable per mode, and how a
// submission payload is assembled.
package editor

import (
	"context"
	"fmt"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/model"
)

// Editor owns the transient row list for one editing session. All
// mutation goes through the transition methods; the UI renders Rows()
// as a pure projection of this state.
type Editor struct {
	mode   model.EditMode
	scope  model.UpdateScope
	rows   []model.Row
	loaded bool
}

// New creates an editor for the given mode. Init mode seeds the two
// reserved categories immediately; add and update modes stay in the
// loading state until SetFetched delivers the server's categories.
func New(mode model.EditMode, scope model.UpdateScope) *Editor {
	e := &Editor{mode: mode, scope: scope}
	if mode == model.ModeInit {
		e.rows = []model.Row{
			{Name: model.CategorySavings, Amount: "", IsNew: true},
			{Name: model.CategoryLoan, Amount: "", IsNew: true},
		}
		e.loaded = true
	}
	return e
}

// Mode returns the session's edit mode.
func (e *Editor) Mode() model.EditMode { return e.mode }

// Scope returns the update scope; meaningful only in update mode.
func (e *Editor) Scope() model.UpdateScope { return e.scope }

// Loaded reports whether the editor has its initial rows and is ready
// for edits.
func (e *Editor) Loaded() bool { return e.loaded }

// RecurringOnly reports whether the pre-edit fetch should request only
// recurring categories.
func (e *Editor) RecurringOnly() bool {
	return e.mode == model.ModeUpdate && e.scope == model.ScopePermanent
}

// SetFetched installs the categories fetched from the server. Under
// update/permanent any row named loan is dropped here as well, in case
// the backend failed to exclude it.
func (e *Editor) SetFetched(categories []model.Category) {
	rows := make([]model.Row, 0, len(categories))
	for _, c := range categories {
		if e.RecurringOnly() && model.IsLoan(c.Name) {
			continue
		}
		rows = append(rows, model.Row{Name: c.Name, Amount: c.Amount.String()})
	}
	e.rows = rows
	e.loaded = true
}

// Rows returns a copy of the current row list.
func (e *Editor) Rows() []model.Row {
	out := make([]model.Row, len(e.rows))
	copy(out, e.rows)
	return out
}

// NameEditable reports whether the row's name field accepts input.
// Names of fetched rows and of the reserved categories are never
// editable.
func (e *Editor) NameEditable(i int) bool {
	if i < 0 || i >= len(e.rows) {
		return false
	}
	row := e.rows[i]
	switch e.mode {
	case model.ModeAdd:
		return row.IsNew
	case model.ModeUpdate:
		return false
	default: // init
		return !model.IsReserved(row.Name)
	}
}

// AmountEditable reports whether the row's amount field accepts input.
func (e *Editor) AmountEditable(i int) bool {
	if i < 0 || i >= len(e.rows) {
		return false
	}
	row := e.rows[i]
	switch e.mode {
	case model.ModeAdd:
		return row.IsNew
	case model.ModeUpdate:
		if e.scope == model.ScopeTemporary {
			return true
		}
		return !model.IsLoan(row.Name)
	default: // init
		return true
	}
}

// CanAddRows reports whether the session permits appending new rows.
func (e *Editor) CanAddRows() bool {
	return e.mode != model.ModeUpdate
}

// AddRow appends an empty new row.
func (e *Editor) AddRow() error {
	if !e.CanAddRows() {
		return common.NewValidationError("mode", "Categories cannot be added while updating.")
	}
	e.rows = append(e.rows, model.Row{IsNew: true})
	return nil
}

// RemoveRow deletes the row at i. Reserved categories always reject
// deletion, and rows that are not editable in the current mode cannot be
// removed either. The row list is left untouched on any failure.
func (e *Editor) RemoveRow(i int) error {
	if i < 0 || i >= len(e.rows) {
		return common.NewValidationError("row", "No such category row.")
	}
	if model.IsReserved(e.rows[i].Name) {
		name := e.rows[i].Name
		return common.NewValidationError("category", fmt.Sprintf("%q category cannot be removed.", name))
	}
	if e.mode == model.ModeUpdate || !e.NameEditable(i) {
		return common.NewValidationError("category", "This category cannot be removed.")
	}
	e.rows = append(e.rows[:i], e.rows[i+1:]...)
	return nil
}

// SetName updates the row's name, respecting editability.
func (e *Editor) SetName(i int, name string) {
	if e.NameEditable(i) {
		e.rows[i].Name = name
	}
}

// SetAmount updates the row's amount text, respecting editability.
func (e *Editor) SetAmount(i int, amount string) {
	if e.AmountEditable(i) {
		e.rows[i].Amount = amount
	}
}

// Submission is a validated payload ready for dispatch.
type Submission struct {
	Mode       model.EditMode
	Scope      model.UpdateScope
	Categories []api.CategoryPayload
}

// Build assembles the submission payload for the session, enforcing the
// per-mode filter rules. Init and add sessions require at least one new
// row with a name and a positive amount; update sessions keep every
// named row, zero amounts included.
func (e *Editor) Build() (Submission, error) {
	sub := Submission{Mode: e.mode, Scope: e.scope}

	if e.mode == model.ModeUpdate {
		for _, row := range e.rows {
			if !row.HasName() {
				continue
			}
			sub.Categories = append(sub.Categories, api.CategoryPayload{Name: row.Name, Amount: row.Amount})
		}
		return sub, nil
	}

	for _, row := range e.rows {
		if row.IsNew && row.HasName() && row.HasPositiveAmount() {
			sub.Categories = append(sub.Categories, api.CategoryPayload{Name: row.Name, Amount: row.Amount})
		}
	}
	if len(sub.Categories) == 0 {
		return Submission{}, common.NewValidationError("categories",
			"Please provide valid name and amount for at least one category.")
	}
	return sub, nil
}

// Send dispatches the submission to the endpoint its mode maps to and
// returns the server's success message.
func (s Submission) Send(ctx context.Context, client *api.Client) (string, error) {
	switch s.Mode {
	case model.ModeInit:
		return client.InitiateCategories(ctx, s.Categories)
	case model.ModeAdd:
		return client.CreateCategories(ctx, s.Categories)
	case model.ModeUpdate:
		return client.UpdateCategories(ctx, api.UpdatePayload{Scope: s.Scope, Categories: s.Categories})
	default:
		return "", fmt.Errorf("unknown edit mode %q", s.Mode)
	}
}
