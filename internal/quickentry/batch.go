// Package quickentry implements the quick-entry batch calculators: short
// lived accumulators of repeated (count, dimension) rows that fold into one
// canonical total on commit.
//
// A batch is a plain value owned by the caller for the life of one entry
// session. Rows are validated when added; Fold never mutates the batch.
package quickentry

import (
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/domain"
)

// DimensionError rejects a single row before it reaches the batch.
type DimensionError struct {
	Field string
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: %s must be positive, got %s", e.Field, domain.FormatQuantity(e.Value))
}

func (e *DimensionError) Unwrap() error { return domain.ErrInvalidDimension }

func positive(field string, v float64) error {
	if v <= 0 {
		return &DimensionError{Field: field, Value: v}
	}
	return nil
}

// Entry is one quick-entry row.
type Entry interface {
	Validate() error
}

// Batch accumulates rows of one kind.
type Batch[E Entry] struct {
	entries []E
}

// Add validates e and appends it. Invalid rows are rejected, never clamped.
func (b *Batch[E]) Add(e E) error {
	if err := e.Validate(); err != nil {
		return err
	}
	b.entries = append(b.entries, e)
	return nil
}

// Remove drops the row at index.
func (b *Batch[E]) Remove(index int) error {
	if index < 0 || index >= len(b.entries) {
		return fmt.Errorf("no entry %d (batch has %d)", index+1, len(b.entries))
	}
	b.entries = append(b.entries[:index:index], b.entries[index+1:]...)
	return nil
}

// Entries returns a copy of the rows in entry order.
func (b *Batch[E]) Entries() []E {
	return append([]E(nil), b.entries...)
}

func (b *Batch[E]) Len() int { return len(b.entries) }

func (b *Batch[E]) rows() ([]E, error) {
	if len(b.entries) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	return b.entries, nil
}
