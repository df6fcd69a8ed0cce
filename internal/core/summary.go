package core

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount_cents"`
}

// Summary is the derived view of the whole document: total expenses,
// per-category totals and the remaining balance (income minus total,
// possibly negative). It is recomputed from scratch on every read.
type Summary struct {
	Income     Money            `json:"income_cents"`
	Total      Money            `json:"total_cents"`
	Remaining  Money            `json:"remaining_cents"`
	ByCategory []CategoryAmount `json:"by_category"`
}

// Aggregate computes the summary for a ledger snapshot. Every category
// in the working set gets a bucket, zero-valued when nothing matches.
// An expense whose category fell out of the working set still counts
// under its original label, appended after the working set entries.
func Aggregate(expenses []Expense, workingSet []string, income Money) Summary {
	buckets := make(map[string]int64, len(workingSet))
	for _, name := range workingSet {
		buckets[name] = 0
	}

	var total int64
	var orphans []string
	for _, e := range expenses {
		sum := e.Total().Cents
		total += sum
		if _, ok := buckets[e.Category]; !ok {
			orphans = append(orphans, e.Category)
		}
		buckets[e.Category] += sum
	}

	byCategory := make([]CategoryAmount, 0, len(buckets))
	for _, name := range workingSet {
		byCategory = append(byCategory, CategoryAmount{Name: name, Amount: Money{Cents: buckets[name]}})
	}
	for _, name := range orphans {
		byCategory = append(byCategory, CategoryAmount{Name: name, Amount: Money{Cents: buckets[name]}})
	}

	return Summary{
		Income:     income,
		Total:      Money{Cents: total},
		Remaining:  Money{Cents: income.Cents - total},
		ByCategory: byCategory,
	}
}
