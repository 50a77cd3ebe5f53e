// Package payment implements the expense/loan payment flow: selection
// validation, mutation dispatch, and the post-mutation branch into the
// online hand-off or the offline success path.
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/model"

	"github.com/shopspring/decimal"
)

// Stage is the payment flow's current position.
type Stage int

const (
	// StageLoading waits for the category fetch.
	StageLoading Stage = iota
	// StageForm accepts a category and amount.
	StageForm
	// StageSubmitting has a mutation in flight; further submits are
	// ignored until the result lands.
	StageSubmitting
	// StageScan is the online hand-off: the in-app flow is paused on the
	// QR scanner and the success callback has not fired.
	StageScan
	// StageDone fires the success notice and, after the notice delay,
	// the success callback.
	StageDone
)

// Flow drives one payment from category selection to completion. It is
// mutated only through its transition methods; rendering is a projection
// of Stage and the selectable category list.
type Flow struct {
	kind       model.PaymentKind
	isLoan     bool
	selectable []model.Category
	stage      Stage
	intent     model.PaymentIntent
}

// New creates a payment flow of the given kind. isLoan marks the session
// as a loan payment, which settles on the loan ledger instead of
// debiting the chosen category.
func New(kind model.PaymentKind, isLoan bool) *Flow {
	return &Flow{kind: kind, isLoan: isLoan, stage: StageLoading}
}

// Kind returns whether this payment settles online or offline.
func (f *Flow) Kind() model.PaymentKind { return f.kind }

// IsLoanPayment reports whether this session pays down the loan.
func (f *Flow) IsLoanPayment() bool { return f.isLoan }

// Stage returns the flow's current stage.
func (f *Flow) Stage() Stage { return f.stage }

// Intent returns the validated intent of the in-flight or completed
// payment.
func (f *Flow) Intent() model.PaymentIntent { return f.intent }

// SetFetched installs the fetched categories and moves to the form. The
// selectable list never contains the loan category or anything with no
// balance left to spend.
func (f *Flow) SetFetched(categories []model.Category) {
	f.selectable = Selectable(categories)
	f.stage = StageForm
}

// Selectable filters categories for the payment picker: loan is excluded
// and so is any category with amount <= 0.
func Selectable(categories []model.Category) []model.Category {
	var out []model.Category
	for _, c := range categories {
		if model.IsLoan(c.Name) || !c.Amount.IsPositive() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Categories returns the selectable categories.
func (f *Flow) Categories() []model.Category {
	out := make([]model.Category, len(f.selectable))
	copy(out, f.selectable)
	return out
}

// Submit validates the selection and latches the submitting stage. It
// returns the intent to dispatch; on validation failure the flow stays
// on the form and nothing is sent.
func (f *Flow) Submit(selected, amountText string) (model.PaymentIntent, error) {
	if f.stage == StageSubmitting {
		return model.PaymentIntent{}, common.NewValidationError("payment", "A payment is already in progress.")
	}

	intent, err := f.validate(selected, amountText)
	if err != nil {
		return model.PaymentIntent{}, err
	}

	f.intent = intent
	f.stage = StageSubmitting
	return intent, nil
}

func (f *Flow) validate(selected, amountText string) (model.PaymentIntent, error) {
	amount, err := decimal.NewFromString(amountText)
	if selected == "" || err != nil || !amount.IsPositive() {
		return model.PaymentIntent{}, common.NewValidationError("payment", "Please enter valid category and amount")
	}

	var category *model.Category
	for i := range f.selectable {
		if model.SameName(f.selectable[i].Name, selected) {
			category = &f.selectable[i]
			break
		}
	}
	if category == nil {
		return model.PaymentIntent{}, common.NewValidationError("payment", "Please enter valid category and amount")
	}

	// Loan payments grow the loan ledger and are exempt from the balance
	// ceiling; everything else cannot overdraw its category.
	if !f.isLoan && !model.IsLoan(category.Name) && amount.GreaterThan(category.Amount) {
		return model.PaymentIntent{}, common.NewValidationError("amount",
			fmt.Sprintf("Amount exceeds balance for %s", category.Name))
	}

	return model.PaymentIntent{
		Category:      category.Name,
		Amount:        amount,
		Kind:          f.kind,
		IsLoanPayment: f.isLoan,
	}, nil
}

// HandleResult applies the mutation outcome. Success branches on the
// payment kind: online pauses on the scanner without firing the success
// callback, offline proceeds to the success notice. Failure returns to
// the form for correction.
func (f *Flow) HandleResult(err error) Stage {
	if err != nil {
		f.stage = StageForm
		return f.stage
	}
	if f.kind == model.PaymentOnline {
		f.stage = StageScan
	} else {
		f.stage = StageDone
	}
	return f.stage
}

// Dispatch sends the mutation the intent maps to and returns the
// server's success message. Validation always precedes this call.
func Dispatch(ctx context.Context, client *api.Client, intent model.PaymentIntent) (string, error) {
	amount := json.Number(intent.Amount.String())
	if intent.IsLoanPayment {
		return client.PayLoan(ctx, intent.Category, amount)
	}
	return client.AdjustBalance(ctx, intent.Category, amount, intent.Direction())
}
