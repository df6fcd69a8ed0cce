// Package tracker owns the in-memory expense document (ledger, custom
// categories, income) and mirrors it to a DocumentStore after every
// mutation. Operations validate fully before mutating and are applied
// atomically; a failed save never rolls the mutation back.
package tracker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/notify"
	"expensetracker/internal/storage"
)

// Events receives fire-and-forget change notifications. All methods
// may fail; failures are logged and never block a mutation.
type Events interface {
	PublishExpenseCreated(ctx context.Context, id int64) error
	PublishExpenseDeleted(ctx context.Context, id int64) error
	PublishCategoryAdded(ctx context.Context, name string) error
	PublishCategoryDeleted(ctx context.Context, name string) error
	PublishIncomeUpdated(ctx context.Context, cents int64) error
}

type Tracker struct {
	mu       sync.Mutex
	store    storage.DocumentStore
	notifier *notify.Notifier
	events   Events

	expenses []core.Expense
	custom   []string
	income   core.Money

	lastID int64
	rev    uint64

	now func() time.Time
}

// New builds a tracker seeded from the store. Missing or unparsable
// documents fall back to empty state; that is logged, not surfaced.
func New(ctx context.Context, store storage.DocumentStore, notifier *notify.Notifier, events Events) *Tracker {
	t := &Tracker{
		store:    store,
		notifier: notifier,
		events:   events,
		now:      time.Now,
	}
	t.load(ctx)
	return t
}

func (t *Tracker) load(ctx context.Context) {
	if raw, found, err := t.store.Get(ctx, storage.KeyExpenses); err != nil {
		slog.ErrorContext(ctx, "Failed to read expenses document", "error", err)
	} else if found {
		var expenses []core.Expense
		if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
			slog.WarnContext(ctx, "Unparsable expenses document, starting empty", "error", err)
		} else {
			t.expenses = expenses
		}
	}

	if raw, found, err := t.store.Get(ctx, storage.KeyCategories); err != nil {
		slog.ErrorContext(ctx, "Failed to read categories document", "error", err)
	} else if found {
		var custom []string
		if err := json.Unmarshal([]byte(raw), &custom); err != nil {
			slog.WarnContext(ctx, "Unparsable categories document, starting empty", "error", err)
		} else {
			t.custom = custom
		}
	}

	if raw, found, err := t.store.Get(ctx, storage.KeyIncome); err != nil {
		slog.ErrorContext(ctx, "Failed to read income document", "error", err)
	} else if found {
		cents, err := core.ParseIncomeCents(raw)
		if err != nil {
			slog.WarnContext(ctx, "Unparsable income document, defaulting to zero", "value", raw, "error", err)
		} else {
			t.income = core.Money{Cents: cents}
		}
	}

	for _, e := range t.expenses {
		if e.ID > t.lastID {
			t.lastID = e.ID
		}
	}

	slog.InfoContext(ctx, "Tracker state loaded",
		"expenses", len(t.expenses),
		"custom_categories", len(t.custom),
		"income_cents", t.income.Cents)
}

// nextID derives a fresh expense ID from the wall clock, falling back
// to a plain increment when two expenses land on the same millisecond.
func (t *Tracker) nextID() int64 {
	id := t.now().UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// Revision increases on every successful mutation. Readers can use it
// as a cheap cache key for derived values.
func (t *Tracker) Revision() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rev
}

// Notification returns the current transient message, if any.
func (t *Tracker) Notification() (notify.Message, bool) {
	return t.notifier.Current()
}

// Summary recomputes the derived totals from the full document. It is
// deliberately not maintained incrementally: full recomputation cannot
// go stale.
func (t *Tracker) Summary() core.Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.Aggregate(t.expenses, core.WorkingSet(t.custom), t.income)
}

// save writes value under key. Save failures are reported to the user
// and logged but the in-memory mutation stands; memory and disk may
// diverge until the next successful write.
func (t *Tracker) save(ctx context.Context, key, value string) {
	if err := t.store.Put(ctx, key, value); err != nil {
		slog.ErrorContext(ctx, "Failed to persist document", "key", key, "error", err)
		t.notifier.Error("Failed to save your data. Changes may be lost on restart.")
	}
}

func (t *Tracker) saveExpenses(ctx context.Context) {
	b, err := json.Marshal(t.expenses)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode expenses document", "error", err)
		return
	}
	t.save(ctx, storage.KeyExpenses, string(b))
}

func (t *Tracker) saveCategories(ctx context.Context) {
	b, err := json.Marshal(t.custom)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode categories document", "error", err)
		return
	}
	t.save(ctx, storage.KeyCategories, string(b))
}

func (t *Tracker) saveIncome(ctx context.Context) {
	t.save(ctx, storage.KeyIncome, t.income.String())
}

func (t *Tracker) publish(ctx context.Context, what string, fn func() error) {
	if t.events == nil {
		return
	}
	if err := fn(); err != nil {
		slog.WarnContext(ctx, "Failed to publish change event", "event", what, "error", err)
	}
}
