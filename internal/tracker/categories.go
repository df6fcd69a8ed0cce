package tracker

import (
	"context"
	"log/slog"
	"strings"

	"expensetracker/internal/core"
)

// Categories returns the working set: predefined plus custom names,
// deduplicated and sorted.
func (t *Tracker) Categories() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.WorkingSet(t.custom)
}

// AddCategory registers a new custom category. The name is trimmed and
// compared case-sensitively against the whole working set.
func (t *Tracker) AddCategory(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		t.notifier.Error("Category name cannot be empty.")
		return core.ErrEmptyName
	}
	for _, existing := range core.WorkingSet(t.custom) {
		if existing == name {
			t.notifier.Error("Category already exists.")
			return core.ErrDuplicateCategory
		}
	}

	// Storage keeps addition order; the sorted view is derived.
	t.custom = append(t.custom, name)
	t.rev++
	t.notifier.Success(`Category "` + name + `" added successfully!`)
	t.saveCategories(ctx)
	t.publish(ctx, "category.added", func() error {
		return t.events.PublishCategoryAdded(ctx, name)
	})

	slog.InfoContext(ctx, "Custom category added", "name", name)
	return nil
}

// DeleteCategory removes a custom category. Predefined names and names
// still referenced by an expense are refused; deleting an absent name
// is a no-op.
func (t *Tracker) DeleteCategory(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if core.IsPredefined(name) {
		t.notifier.Error(`Cannot delete predefined category: "` + name + `".`)
		return core.ErrProtectedCategory
	}
	for _, e := range t.expenses {
		if e.Category == name {
			t.notifier.Error(`Cannot delete category "` + name + `" because it is currently used by one or more expenses.`)
			return core.ErrCategoryInUse
		}
	}

	kept := t.custom[:0]
	removed := false
	for _, c := range t.custom {
		if c == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	t.custom = kept

	t.notifier.Success(`Category "` + name + `" deleted successfully!`)
	if removed {
		t.rev++
		t.saveCategories(ctx)
		t.publish(ctx, "category.deleted", func() error {
			return t.events.PublishCategoryDeleted(ctx, name)
		})
		slog.InfoContext(ctx, "Custom category deleted", "name", name)
	}
	return nil
}
