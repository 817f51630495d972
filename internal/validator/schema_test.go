package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name string
	Age  int
}

func newSignupSchema() *Schema[signup] {
	return NewSchema[signup]().
		Field("name",
			Rule[signup]{Check: func(s signup) bool { return NotBlank(s.Name) }, Message: "Name is required"},
			Rule[signup]{Check: func(s signup) bool { return MinRunes(s.Name, 2) }, Message: "Name is too short"},
		).
		Field("age",
			Rule[signup]{Check: func(s signup) bool { return s.Age >= 18 }, Message: "Too young"},
		)
}

func TestSchema_FirstFailingRuleWins(t *testing.T) {
	s := newSignupSchema()

	v := s.Validate(signup{Name: "", Age: 10})
	assert.Equal(t, "Name is required", v.Errors["name"])
	assert.Equal(t, "Too young", v.Errors["age"])

	v = s.Validate(signup{Name: "J", Age: 30})
	assert.Equal(t, "Name is too short", v.Errors["name"])
	assert.NotContains(t, v.Errors, "age")

	v = s.Validate(signup{Name: "Jo", Age: 30})
	assert.True(t, v.Valid())
}

func TestSchema_FieldsKeepDeclarationOrder(t *testing.T) {
	s := newSignupSchema()
	s.Field("name", Rule[signup]{Check: func(signup) bool { return true }, Message: "unused"})

	assert.Equal(t, []string{"name", "age"}, s.Fields())
}

func TestSchema_ValidateField(t *testing.T) {
	s := newSignupSchema()

	msg, ok := s.ValidateField("age", signup{Age: 3})
	assert.False(t, ok)
	assert.Equal(t, "Too young", msg)

	_, ok = s.ValidateField("unknown", signup{})
	assert.True(t, ok)
}
