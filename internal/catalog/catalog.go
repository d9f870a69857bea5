// Package catalog holds the static field schemas for each work type.
//
// There are two catalogs over overlapping work types: Dispatch describes
// what the office asks for when a job is scheduled, Performed describes what
// the operator records on site. They are distinct field sets and must not be
// mixed.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/domain"
)

type entry struct {
	id     domain.WorkTypeID
	header string
	fields []FieldSpec
}

// Catalog is an immutable registry of work types and their fields.
type Catalog struct {
	name    string
	entries []entry
	index   map[domain.WorkTypeID]int
}

func newCatalog(name string, entries []entry) *Catalog {
	c := &Catalog{name: name, entries: entries, index: make(map[domain.WorkTypeID]int, len(entries))}
	for i, e := range entries {
		c.index[e.id] = i
	}
	return c
}

func (c *Catalog) Name() string { return c.name }

func (c *Catalog) lookup(id domain.WorkTypeID) (entry, error) {
	i, ok := c.index[id]
	if !ok {
		return entry{}, fmt.Errorf("%s catalog: %w: %q", c.name, domain.ErrUnknownWorkType, string(id))
	}
	return c.entries[i], nil
}

// FieldSpecs returns the fields registered for id, in form order.
func (c *Catalog) FieldSpecs(id domain.WorkTypeID) ([]FieldSpec, error) {
	e, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]FieldSpec, len(e.fields))
	copy(out, e.fields)
	return out, nil
}

// Header returns the static description line for id.
func (c *Catalog) Header(id domain.WorkTypeID) (string, error) {
	e, err := c.lookup(id)
	if err != nil {
		return "", err
	}
	return e.header, nil
}

func (c *Catalog) Has(id domain.WorkTypeID) bool {
	_, ok := c.index[id]
	return ok
}

// Field returns a single field spec by name.
func (c *Catalog) Field(id domain.WorkTypeID, name string) (FieldSpec, bool) {
	e, err := c.lookup(id)
	if err != nil {
		return FieldSpec{}, false
	}
	for _, f := range e.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// WorkTypes lists registered ids in table order.
func (c *Catalog) WorkTypes() []domain.WorkTypeID {
	out := make([]domain.WorkTypeID, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.id
	}
	return out
}
