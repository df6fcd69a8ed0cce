package core

import (
	"errors"
	"sort"
	"strings"
)

type (
	// Money is a monetary amount in cents.
	Money struct {
		Cents int64
	}

	// LineItem is a single named, priced component of an expense.
	// Its ID is only unique within the parent expense.
	LineItem struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Amount Money  `json:"amount_cents"`
	}

	// Expense is one recorded spending event: a date, a category and
	// one or more line items. Expenses are immutable after creation;
	// the only mutation is whole-record deletion.
	Expense struct {
		ID       int64      `json:"id"`
		Date     string     `json:"date"` // calendar date, YYYY-MM-DD
		Category string     `json:"category"`
		Items    []LineItem `json:"items"`
	}
)

var (
	ErrEmptyName         = errors.New("category name cannot be empty")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrProtectedCategory = errors.New("cannot delete predefined category")
	ErrCategoryInUse     = errors.New("category is used by an expense")
	ErrMissingDate       = errors.New("missing expense date")
	ErrNoItems           = errors.New("expense needs at least one item")
	ErrInvalidItem       = errors.New("item needs a name and a positive amount")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// predefined is the fixed category set. These names are always part of
// the working set and can never be deleted.
var predefined = []string{
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Shopping",
	"Healthcare",
	"Education",
	"Other",
}

// PredefinedCategories returns a copy of the fixed category set.
func PredefinedCategories() []string {
	return append([]string(nil), predefined...)
}

// IsPredefined reports whether name is one of the fixed categories.
// Comparison is exact and case-sensitive.
func IsPredefined(name string) bool {
	for _, p := range predefined {
		if p == name {
			return true
		}
	}
	return false
}

// WorkingSet merges the predefined set with the custom categories into
// one deduplicated, lexicographically sorted list.
func WorkingSet(custom []string) []string {
	seen := make(map[string]struct{}, len(predefined)+len(custom))
	out := make([]string, 0, len(predefined)+len(custom))
	for _, name := range predefined {
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range custom {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Name) == "" {
		return ErrInvalidItem
	}
	if li.Amount.Cents <= 0 {
		return ErrInvalidItem
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return ErrMissingDate
	}
	if len(e.Items) == 0 {
		return ErrNoItems
	}
	for _, li := range e.Items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Total sums the expense's line item amounts.
func (e Expense) Total() Money {
	var cents int64
	for _, li := range e.Items {
		cents += li.Amount.Cents
	}
	return Money{Cents: cents}
}
