package tracker

import (
	"context"
	"log/slog"

	"expensetracker/internal/core"
)

// SetIncome parses raw as a non-negative decimal and replaces the
// stored income. There is only one income figure and no history.
func (t *Tracker) SetIncome(ctx context.Context, raw string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cents, err := core.ParseIncomeCents(raw)
	if err != nil {
		t.notifier.Error("Please enter a valid non-negative number for income.")
		return core.ErrInvalidAmount
	}

	t.income = core.Money{Cents: cents}
	t.rev++
	t.notifier.Success("Income updated successfully!")
	t.saveIncome(ctx)
	t.publish(ctx, "income.updated", func() error {
		return t.events.PublishIncomeUpdated(ctx, cents)
	})

	slog.InfoContext(ctx, "Income updated", "income_cents", cents)
	return nil
}

// Income returns the current income, zero if never set.
func (t *Tracker) Income() core.Money {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.income
}
