package record

// Person is a staff member whose products are rated.
type Person struct {
	Identifier *int

	// FullName is "SURNAME NAME" and must match
	// Product.AuthorFullName exactly.
	FullName string

	Role    *string
	SubArea SubArea

	RowIndex int
}

type personSetter func(*Person, any)

var personSetters = map[Field]personSetter{
	FieldIdentifier: func(p *Person, v any) { p.Identifier = toInt(v) },
	FieldFullName: func(p *Person, v any) {
		if s := toString(v); s != nil {
			p.FullName = *s
		}
	},
	FieldRole: func(p *Person, v any) { p.Role = toString(v) },
	FieldSubArea: func(p *Person, v any) {
		if s := toString(v); s != nil {
			p.SubArea = NewSubArea(*s)
		}
	},
}

// NewPerson builds a Person from a flat row ordered as
// PersonLayout.
func NewPerson(values []any, rowIndex int) (Person, error) {
	res := Person{RowIndex: rowIndex}
	if len(values) != len(PersonLayout) {
		return res, LengthError("person", rowIndex, len(PersonLayout), len(values))
	}
	for i, f := range PersonLayout {
		personSetters[f](&res, values[i])
	}
	if res.FullName == "" {
		return res, MissingKeyError("person", FieldFullName, rowIndex)
	}
	return res, nil
}

// Value returns the value of a field, nil when absent.
func (p Person) Value(f Field) (any, error) {
	switch f {
	case FieldIdentifier:
		return intValue(p.Identifier), nil
	case FieldFullName:
		return p.FullName, nil
	case FieldRole:
		return stringValue(p.Role), nil
	case FieldSubArea:
		if p.SubArea == SubAreaAbsent {
			return nil, nil
		}
		return string(p.SubArea), nil
	case FieldRowIndex:
		return p.RowIndex, nil
	default:
		return nil, FieldNotFoundError("person", f)
	}
}

func (p Person) String() string {
	return p.FullName + " (" + string(p.SubArea) + ")"
}
