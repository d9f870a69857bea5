package catalog

// InputKind is how a field is captured.
type InputKind string

const (
	KindText           InputKind = "text"
	KindSingleSelect   InputKind = "single-select"
	KindMultiSelect    InputKind = "multi-select"
	KindYesNo          InputKind = "yes/no"
	KindStructuredList InputKind = "structured-list"
)

// ListKind is the entry type of a structured-list field.
type ListKind string

const (
	ListHole ListKind = "hole"
	ListCut  ListKind = "cut"
	ListArea ListKind = "area"
)

// YesNoOptions are the only values a yes/no field accepts.
var YesNoOptions = []string{"Yes", "No"}

// Condition hides a field unless the sibling Field currently equals Value.
type Condition struct {
	Field string
	Value string
}

// FieldSpec describes one field of a work type's form.
type FieldSpec struct {
	Name      string
	Label     string
	Kind      InputKind
	List      ListKind
	Options   []string
	Condition *Condition
}

func (f FieldSpec) IsList() bool { return f.Kind == KindStructuredList }

// Allows reports whether v is one of the field's options. Fields without
// options accept any value.
func (f FieldSpec) Allows(v string) bool {
	opts := f.Options
	if f.Kind == KindYesNo {
		opts = YesNoOptions
	}
	if len(opts) == 0 {
		return true
	}
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}

// FieldValues exposes the current scalar value of sibling fields.
type FieldValues interface {
	Text(name string) string
}

// Visible filters specs down to the fields that should be shown and
// aggregated given the current values. A conditional field is dropped
// whenever its sibling does not equal the stated value.
func Visible(specs []FieldSpec, values FieldValues) []FieldSpec {
	out := make([]FieldSpec, 0, len(specs))
	for _, f := range specs {
		if f.Condition != nil && values.Text(f.Condition.Field) != f.Condition.Value {
			continue
		}
		out = append(out, f)
	}
	return out
}

func text(name, label string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindText}
}

func single(name, label string, opts ...string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindSingleSelect, Options: opts}
}

func multi(name, label string, opts ...string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindMultiSelect, Options: opts}
}

func yesNo(name, label string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindYesNo}
}

func list(name, label string, kind ListKind) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindStructuredList, List: kind}
}

func (f FieldSpec) when(field, value string) FieldSpec {
	f.Condition = &Condition{Field: field, Value: value}
	return f
}
