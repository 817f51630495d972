package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   "))
	assert.True(t, NotBlank(" a "))
}

func TestMinRunes(t *testing.T) {
	assert.False(t, MinRunes("A", 2))
	assert.False(t, MinRunes(" A ", 2))
	assert.True(t, MinRunes("Al", 2))
	assert.True(t, MinRunes("Zoë", 3))
}

func TestIsEmail(t *testing.T) {
	valid := []string{"jane@example.com", "jane.doe+trips@mail.example.co.uk", "jane@localhost"}
	invalid := []string{"", "jane", "jane@", "@example.com", "jane@-example", "jane@example.", "jane doe@example.com",
		strings.Repeat("a", 250) + "@example.com"}

	for _, e := range valid {
		assert.True(t, IsEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsEmail(e), e)
	}
}

func TestTimeRules(t *testing.T) {
	ref := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.True(t, After(ref.Add(time.Second), ref))
	assert.False(t, After(ref, ref))
	assert.True(t, NotBefore(ref, ref))
	assert.False(t, NotBefore(ref.Add(-time.Second), ref))
	assert.False(t, Present(time.Time{}))
	assert.True(t, Present(ref))
}
