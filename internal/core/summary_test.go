package core

import "testing"

func TestAggregateScenario(t *testing.T) {
	expenses := []Expense{{
		ID:       1,
		Date:     "2024-03-01",
		Category: "Food",
		Items: []LineItem{
			{ID: 1, Name: "Lunch", Amount: Money{Cents: 1250}},
			{ID: 2, Name: "Snack", Amount: Money{Cents: 250}},
		},
	}}

	s := Aggregate(expenses, WorkingSet(nil), Money{Cents: 0})
	if s.Total.Cents != 1500 {
		t.Fatalf("total expected 1500, got %d", s.Total.Cents)
	}
	if s.Remaining.Cents != -1500 {
		t.Fatalf("remaining expected -1500, got %d", s.Remaining.Cents)
	}
	if got := categoryCents(t, s, "Food"); got != 1500 {
		t.Fatalf("Food bucket expected 1500, got %d", got)
	}
	// Every working-set category has a bucket, zero or not.
	if len(s.ByCategory) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(s.ByCategory))
	}
	if got := categoryCents(t, s, "Transport"); got != 0 {
		t.Fatalf("Transport bucket expected 0, got %d", got)
	}
}

func TestAggregateOrphanCategory(t *testing.T) {
	expenses := []Expense{{
		ID:       1,
		Date:     "2024-03-01",
		Category: "Pets",
		Items:    []LineItem{{ID: 1, Name: "Kibble", Amount: Money{Cents: 900}}},
	}}

	// "Pets" is not in the working set: the expense still contributes
	// under its original label as an extra bucket.
	s := Aggregate(expenses, WorkingSet(nil), Money{Cents: 10000})
	if len(s.ByCategory) != 9 {
		t.Fatalf("expected 8 buckets plus orphan, got %d", len(s.ByCategory))
	}
	if got := categoryCents(t, s, "Pets"); got != 900 {
		t.Fatalf("orphan bucket expected 900, got %d", got)
	}
	if s.Remaining.Cents != 9100 {
		t.Fatalf("remaining expected 9100, got %d", s.Remaining.Cents)
	}
}

func categoryCents(t *testing.T, s Summary, name string) int64 {
	t.Helper()
	for _, ca := range s.ByCategory {
		if ca.Name == name {
			return ca.Amount.Cents
		}
	}
	t.Fatalf("category %q missing from summary", name)
	return 0
}
