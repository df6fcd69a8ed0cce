package core

import (
	"errors"
	"testing"
)

func TestLineItemValidate(t *testing.T) {
	cases := []struct {
		li LineItem
		ok bool
	}{
		{LineItem{ID: 1, Name: "Lunch", Amount: Money{Cents: 1250}}, true},
		{LineItem{ID: 1, Name: "", Amount: Money{Cents: 1250}}, false},
		{LineItem{ID: 1, Name: "   ", Amount: Money{Cents: 1250}}, false},
		{LineItem{ID: 1, Name: "Lunch", Amount: Money{Cents: 0}}, false},
		{LineItem{ID: 1, Name: "Lunch", Amount: Money{Cents: -5}}, false},
	}
	for i, tc := range cases {
		err := tc.li.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("case %d expected ErrInvalidItem, got %v", i, err)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:       1,
		Date:     "2024-01-01",
		Category: "Food",
		Items:    []LineItem{{ID: 1, Name: "Lunch", Amount: Money{Cents: 100}}},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		e    Expense
		want error
	}{
		{Expense{Date: "", Category: "Food", Items: good.Items}, ErrMissingDate},
		{Expense{Date: "  ", Category: "Food", Items: good.Items}, ErrMissingDate},
		{Expense{Date: "2024-01-01", Category: "Food"}, ErrNoItems},
		{Expense{Date: "2024-01-01", Category: "Food", Items: []LineItem{{Name: "", Amount: Money{Cents: 500}}}}, ErrInvalidItem},
		{Expense{Date: "2024-01-01", Category: "Food", Items: []LineItem{
			{ID: 1, Name: "ok", Amount: Money{Cents: 500}},
			{ID: 2, Name: "bad", Amount: Money{Cents: 0}},
		}}, ErrInvalidItem},
	}
	for i, tc := range cases {
		if err := tc.e.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestExpenseTotal(t *testing.T) {
	e := Expense{Items: []LineItem{
		{ID: 1, Name: "Lunch", Amount: Money{Cents: 1250}},
		{ID: 2, Name: "Snack", Amount: Money{Cents: 250}},
	}}
	if got := e.Total().Cents; got != 1500 {
		t.Fatalf("expected 1500, got %d", got)
	}
}

func TestWorkingSet(t *testing.T) {
	ws := WorkingSet(nil)
	if len(ws) != 8 {
		t.Fatalf("expected 8 predefined categories, got %d", len(ws))
	}
	for i := 1; i < len(ws); i++ {
		if ws[i-1] >= ws[i] {
			t.Fatalf("working set not sorted: %q >= %q", ws[i-1], ws[i])
		}
	}

	ws = WorkingSet([]string{"Pets", "Food", "  Pets  ", ""})
	if len(ws) != 9 {
		t.Fatalf("expected 9 categories after dedup, got %d: %v", len(ws), ws)
	}
	found := false
	for _, name := range ws {
		if name == "Pets" {
			found = true
		}
	}
	if !found {
		t.Fatalf("custom category missing from working set: %v", ws)
	}
}

func TestIsPredefined(t *testing.T) {
	if !IsPredefined("Food") {
		t.Fatal("Food should be predefined")
	}
	if IsPredefined("food") {
		t.Fatal("comparison must be case-sensitive")
	}
	if IsPredefined("Pets") {
		t.Fatal("Pets is not predefined")
	}
}
