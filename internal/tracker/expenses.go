package tracker

import (
	"context"
	"log/slog"
	"strings"

	"expensetracker/internal/core"
)

// ItemInput is one line item as submitted by the user. Amount is the
// raw text from the form; it is parsed during validation.
type ItemInput struct {
	Name   string
	Amount string
}

// AddExpense validates and appends a new expense. Validation is
// all-or-nothing: one bad item rejects the whole submission and
// nothing is mutated.
func (t *Tracker) AddExpense(ctx context.Context, date, category string, items []ItemInput) (core.Expense, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(date) == "" {
		t.notifier.Error("Please select a date for the expense.")
		return core.Expense{}, core.ErrMissingDate
	}
	if len(items) == 0 {
		t.notifier.Error("Please add at least one item to the expense.")
		return core.Expense{}, core.ErrNoItems
	}

	lineItems := make([]core.LineItem, 0, len(items))
	for i, in := range items {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			t.notifier.Error("Each item must have a valid name and a positive amount.")
			return core.Expense{}, core.ErrInvalidItem
		}
		cents, err := core.ParseDecimalToCents(in.Amount)
		if err != nil {
			t.notifier.Error("Each item must have a valid name and a positive amount.")
			return core.Expense{}, core.ErrInvalidItem
		}
		lineItems = append(lineItems, core.LineItem{
			ID:     int64(i + 1),
			Name:   name,
			Amount: core.Money{Cents: cents},
		})
	}

	expense := core.Expense{
		ID:       t.nextID(),
		Date:     strings.TrimSpace(date),
		Category: category,
		Items:    lineItems,
	}

	t.expenses = append(t.expenses, expense)
	t.rev++
	t.notifier.Success("Expense added successfully!")
	t.saveExpenses(ctx)
	t.publish(ctx, "expense.created", func() error {
		return t.events.PublishExpenseCreated(ctx, expense.ID)
	})

	slog.InfoContext(ctx, "Expense added",
		"id", expense.ID,
		"date", expense.Date,
		"category", expense.Category,
		"items", len(expense.Items),
		"total_cents", expense.Total().Cents)

	return expense, nil
}

// DeleteExpense removes the expense with the given id. Deleting an
// unknown id is a no-op, not an error.
func (t *Tracker) DeleteExpense(ctx context.Context, id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.expenses[:0]
	removed := false
	for _, e := range t.expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	t.expenses = kept

	t.notifier.Success("Expense deleted successfully!")
	if removed {
		t.rev++
		t.saveExpenses(ctx)
		t.publish(ctx, "expense.deleted", func() error {
			return t.events.PublishExpenseDeleted(ctx, id)
		})
		slog.InfoContext(ctx, "Expense deleted", "id", id)
	}
}

// Expenses returns the ledger in append order.
func (t *Tracker) Expenses() []core.Expense {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}
