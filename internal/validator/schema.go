package validator

// Rule is a predicate over the value being validated paired with the
// message reported when the predicate fails.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
}

// Schema maps field names to ordered rules. Fields are evaluated in the
// order they were declared and the first failing rule of a field wins.
type Schema[T any] struct {
	order []string
	rules map[string][]Rule[T]
}

// NewSchema returns an empty schema
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{rules: make(map[string][]Rule[T])}
}

// Field appends rules for field and returns the schema for chaining.
func (s *Schema[T]) Field(name string, rules ...Rule[T]) *Schema[T] {
	if _, ok := s.rules[name]; !ok {
		s.order = append(s.order, name)
	}
	s.rules[name] = append(s.rules[name], rules...)
	return s
}

// Fields returns the field names in declaration order
func (s *Schema[T]) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Validate runs every field's rules against value
func (s *Schema[T]) Validate(value T) *Validator {
	v := New()
	for _, name := range s.order {
		s.check(v, name, value)
	}
	return v
}

// ValidateField runs the rules of a single field. Unknown fields are valid.
func (s *Schema[T]) ValidateField(name string, value T) (string, bool) {
	v := New()
	s.check(v, name, value)
	msg, failed := v.Errors[name]
	return msg, !failed
}

func (s *Schema[T]) check(v *Validator, name string, value T) {
	for _, rule := range s.rules[name] {
		if !rule.Check(value) {
			v.AddError(name, rule.Message)
			return
		}
	}
}
