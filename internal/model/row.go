package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EditMode selects which editing session is in progress. A session uses
// exactly one mode for its whole lifetime.
type EditMode string

const (
	// ModeInit seeds the two reserved categories for first-time setup.
	ModeInit EditMode = "init"
	// ModeAdd appends new categories alongside the fetched ones.
	ModeAdd EditMode = "add"
	// ModeUpdate edits the amounts of existing categories.
	ModeUpdate EditMode = "update"
)

// UpdateScope narrows an update session. Permanent updates address only
// recurring categories and exclude the loan row entirely; temporary
// updates cover every category including loan.
type UpdateScope string

const (
	ScopePermanent UpdateScope = "permanent"
	ScopeTemporary UpdateScope = "temporary"
)

// Row is the transient edit-state for one category in the editor. Amount
// is kept exactly as the user entered it; it is only parsed when building
// a submission payload. IsNew marks rows created in the current session,
// as opposed to rows fetched from the server.
type Row struct {
	Name   string
	Amount string
	IsNew  bool
}

// ParsedAmount returns the row's amount as a decimal, or false when the
// text does not parse.
func (r Row) ParsedAmount() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// HasPositiveAmount reports whether the amount parses to a number > 0.
func (r Row) HasPositiveAmount() bool {
	d, ok := r.ParsedAmount()
	return ok && d.IsPositive()
}

// HasName reports whether the row carries a non-empty name.
func (r Row) HasName() bool {
	return strings.TrimSpace(r.Name) != ""
}
