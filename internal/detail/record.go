// Package detail implements the per-work-type detail record: a set of
// typed field values bound to the field specs of one work type.
package detail

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cutsheet/internal/catalog"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrFieldKind       = errors.New("value does not fit field")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Record is the detail record of one selected work type. It is owned by a
// single edit session and is not safe for concurrent use.
type Record struct {
	workType domain.WorkTypeID
	specs    []catalog.FieldSpec
	values   map[string]Value
}

// New creates an empty record bound to specs.
func New(id domain.WorkTypeID, specs []catalog.FieldSpec) *Record {
	return &Record{workType: id, specs: specs, values: make(map[string]Value)}
}

// NewFromCatalog looks up id in c and returns an empty record for it.
func NewFromCatalog(c *catalog.Catalog, id domain.WorkTypeID) (*Record, error) {
	specs, err := c.FieldSpecs(id)
	if err != nil {
		return nil, err
	}
	return New(id, specs), nil
}

func (r *Record) WorkType() domain.WorkTypeID { return r.workType }

// Specs returns the field specs the record is bound to.
func (r *Record) Specs() []catalog.FieldSpec { return r.specs }

func (r *Record) spec(name string) (catalog.FieldSpec, error) {
	for _, f := range r.specs {
		if f.Name == name {
			return f, nil
		}
	}
	return catalog.FieldSpec{}, fmt.Errorf("%s: %w %q", r.workType, ErrUnknownField, name)
}

// SetField replaces the value stored at name.
func (r *Record) SetField(name string, v Value) error {
	f, err := r.spec(name)
	if err != nil {
		return err
	}
	v, err = conform(f, v)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", r.workType, name, err)
	}
	r.values[name] = v
	return nil
}

// AppendToList adds e to the end of the structured list at name.
func (r *Record) AppendToList(name string, e Entry) error {
	f, err := r.spec(name)
	if err != nil {
		return err
	}
	if !f.IsList() {
		return fmt.Errorf("%s.%s: %w", r.workType, name, domain.ErrNotAListField)
	}
	if e.ListKind() != f.List {
		return fmt.Errorf("%s.%s: %w: %s entry in %s list", r.workType, name, ErrFieldKind, e.ListKind(), f.List)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%s.%s: %w", r.workType, name, err)
	}
	switch e := e.(type) {
	case HoleSpec:
		cur, _ := r.values[name].(Holes)
		r.values[name] = append(cur.clone().(Holes), e)
	case CutSpec:
		cur, _ := r.values[name].(Cuts)
		r.values[name] = append(cur.clone().(Cuts), e)
	case AreaSpec:
		cur, _ := r.values[name].(Areas)
		r.values[name] = append(cur.clone().(Areas), e)
	}
	return nil
}

// RemoveFromList deletes the entry at index from the list at name.
func (r *Record) RemoveFromList(name string, index int) error {
	f, err := r.spec(name)
	if err != nil {
		return err
	}
	if !f.IsList() {
		return fmt.Errorf("%s.%s: %w", r.workType, name, domain.ErrNotAListField)
	}
	n := 0
	switch v := r.values[name].(type) {
	case Holes:
		n = len(v)
	case Cuts:
		n = len(v)
	case Areas:
		n = len(v)
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%s.%s: %w: %d (len %d)", r.workType, name, ErrIndexOutOfRange, index, n)
	}
	switch v := r.values[name].(type) {
	case Holes:
		r.values[name] = append(v[:index:index], v[index+1:]...)
	case Cuts:
		r.values[name] = append(v[:index:index], v[index+1:]...)
	case Areas:
		r.values[name] = append(v[:index:index], v[index+1:]...)
	}
	return nil
}

// Get returns the raw value at name.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Text returns the scalar value at name, or "" when it is unset or not scalar.
func (r *Record) Text(name string) string {
	t, _ := r.values[name].(Text)
	return string(t)
}

func (r *Record) Choices(name string) []string {
	c, _ := r.values[name].(Choices)
	return c
}

func (r *Record) Holes(name string) []HoleSpec {
	h, _ := r.values[name].(Holes)
	return h
}

func (r *Record) Cuts(name string) []CutSpec {
	c, _ := r.values[name].(Cuts)
	return c
}

func (r *Record) Areas(name string) []AreaSpec {
	a, _ := r.values[name].(Areas)
	return a
}

// Fields returns the specs of fields holding a non-empty value, in form order.
func (r *Record) Fields() []catalog.FieldSpec {
	var out []catalog.FieldSpec
	for _, f := range r.specs {
		if v, ok := r.values[f.Name]; ok && !v.isEmpty() {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	c := New(r.workType, r.specs)
	for k, v := range r.values {
		c.values[k] = v.clone()
	}
	return c
}

// Finalize returns a copy ready to be committed: empty values are omitted
// and conditional fields whose condition does not hold are dropped.
func (r *Record) Finalize() *Record {
	out := New(r.workType, r.specs)
	for _, f := range catalog.Visible(r.specs, r) {
		v, ok := r.values[f.Name]
		if !ok || v.isEmpty() {
			continue
		}
		out.values[f.Name] = v.clone()
	}
	return out
}

// conform checks v against the field's kind and options and normalizes it.
func conform(f catalog.FieldSpec, v Value) (Value, error) {
	switch f.Kind {
	case catalog.KindText:
		if t, ok := v.(Text); ok {
			return t, nil
		}
	case catalog.KindSingleSelect, catalog.KindYesNo:
		if t, ok := v.(Text); ok {
			if !t.isEmpty() && !f.Allows(string(t)) {
				return nil, fmt.Errorf("%w: %q is not an option", ErrFieldKind, string(t))
			}
			return t, nil
		}
	case catalog.KindMultiSelect:
		if c, ok := v.(Choices); ok {
			seen := make(map[string]bool, len(c))
			out := make(Choices, 0, len(c))
			for _, s := range c {
				if !f.Allows(s) {
					return nil, fmt.Errorf("%w: %q is not an option", ErrFieldKind, s)
				}
				if seen[s] {
					continue
				}
				seen[s] = true
				out = append(out, s)
			}
			return out, nil
		}
	case catalog.KindStructuredList:
		return conformList(f, v)
	}
	return nil, fmt.Errorf("%w: %T for %s field", ErrFieldKind, v, f.Kind)
}

func conformList(f catalog.FieldSpec, v Value) (Value, error) {
	var entries []Entry
	switch l := v.(type) {
	case Holes:
		for _, e := range l {
			entries = append(entries, e)
		}
	case Cuts:
		for _, e := range l {
			entries = append(entries, e)
		}
	case Areas:
		for _, e := range l {
			entries = append(entries, e)
		}
	default:
		return nil, fmt.Errorf("%w: %T for %s list", ErrFieldKind, v, f.List)
	}
	if !listMatches(f.List, v) {
		return nil, fmt.Errorf("%w: %T for %s list", ErrFieldKind, v, f.List)
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return v.clone(), nil
}

func listMatches(kind catalog.ListKind, v Value) bool {
	switch v.(type) {
	case Holes:
		return kind == catalog.ListHole
	case Cuts:
		return kind == catalog.ListCut
	case Areas:
		return kind == catalog.ListArea
	}
	return false
}
