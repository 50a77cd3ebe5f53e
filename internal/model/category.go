// Package model defines the domain types shared across the application.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reserved category names. These are seeded at setup time and follow
// special lifecycle rules: they can never be deleted and their names are
// never editable.
const (
	CategorySavings = "savings"
	CategoryLoan    = "loan"
)

// Category is a named budget bucket with a numeric balance, as returned
// by the remote API.
type Category struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IsReserved reports whether name is one of the system categories.
// Category names are compared case-insensitively throughout.
func IsReserved(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == CategorySavings || n == CategoryLoan
}

// IsLoan reports whether name refers to the loan category.
func IsLoan(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), CategoryLoan)
}

// IsSavings reports whether name refers to the savings category.
func IsSavings(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), CategorySavings)
}

// SameName reports whether two category names refer to the same category.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// SplitDashboard partitions categories into the pinned reserved cards
// (savings first, then loan) and everything else, preserving the fetched
// order of the remainder.
func SplitDashboard(categories []Category) (top, rest []Category) {
	var savings, loan *Category
	for i := range categories {
		switch {
		case IsSavings(categories[i].Name):
			savings = &categories[i]
		case IsLoan(categories[i].Name):
			loan = &categories[i]
		default:
			rest = append(rest, categories[i])
		}
	}
	if savings != nil {
		top = append(top, *savings)
	}
	if loan != nil {
		top = append(top, *loan)
	}
	return top, rest
}
