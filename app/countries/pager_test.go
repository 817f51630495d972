package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager(t *testing.T) {
	t.Run("starts on page one", func(t *testing.T) {
		p := NewPager()
		assert.Equal(t, 1, p.Page())
		assert.Equal(t, "", p.Search())
	})

	t.Run("select clamps into range", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(5)

		p.Select(3)
		assert.Equal(t, 3, p.Page())
		p.Select(9)
		assert.Equal(t, 5, p.Page())
		p.Select(-2)
		assert.Equal(t, 1, p.Page())
	})

	t.Run("zero pages still allows page one", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(0)
		p.Select(2)
		assert.Equal(t, 1, p.Page())
	})

	t.Run("changing the search resets the page", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(5)
		p.Select(4)

		p.SetSearch("an")
		assert.Equal(t, 1, p.Page())
		assert.Equal(t, "an", p.Search())
	})

	t.Run("same search keeps the page", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(5)
		p.SetSearch("an")
		p.Select(3)

		p.SetSearch("an")
		assert.Equal(t, 3, p.Page())
	})

	t.Run("clear empties the search and resets the page", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(5)
		p.SetSearch("an")
		p.Select(2)

		p.Clear()
		assert.Equal(t, "", p.Search())
		assert.Equal(t, 1, p.Page())
	})

	t.Run("next and prev stop at the edges", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(2)
		p.Prev()
		assert.Equal(t, 1, p.Page())
		p.Next()
		p.Next()
		assert.Equal(t, 2, p.Page())
	})

	t.Run("shrinking total pages pulls the page back", func(t *testing.T) {
		p := NewPager()
		p.SetTotalPages(5)
		p.Select(5)
		p.SetTotalPages(2)
		assert.Equal(t, 2, p.Page())
	})
}
