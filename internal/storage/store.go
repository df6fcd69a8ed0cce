// Package storage persists the tracker's documents. The model is a
// tiny string-keyed blob store with three well-known keys: the expense
// ledger, the custom category list and the income value. Each document
// is written whole after the mutation that touched it.
package storage

import "context"

// Well-known document keys.
const (
	KeyExpenses   = "expenses"   // JSON array of core.Expense
	KeyCategories = "categories" // JSON array of strings
	KeyIncome     = "income"     // decimal string, e.g. "1234.50"
)

// DocumentStore is the persistence boundary. Get reports found=false
// for a key that was never written.
type DocumentStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
	Close() error
}
