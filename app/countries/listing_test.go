package countries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travel-explorer/models"
)

func names(list []models.Country) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].Name
	}
	return out
}

func TestFilter(t *testing.T) {
	all := sampleCountries()

	t.Run("empty search keeps everything", func(t *testing.T) {
		assert.Equal(t, all, Filter(all, ""))
	})

	t.Run("case-insensitive substring in source order", func(t *testing.T) {
		got := Filter(all, "UNITED")
		assert.Equal(t, []string{"United Arab Emirates", "United Kingdom", "United States"}, names(got))
	})

	t.Run("matches exactly the names containing the term", func(t *testing.T) {
		for _, term := range []string{"a", "ger", "xyz", "ted st"} {
			got := Filter(all, term)
			want := 0
			for _, c := range all {
				if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
					want++
				}
			}
			assert.Len(t, got, want, term)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, Filter(all, "atlantis"))
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{0, 0}, {1, 1}, {10, 1}, {11, 2}, {20, 2}, {21, 3}, {250, 25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, PageSize), "count %d", tt.count)
	}
}

func TestPaginate(t *testing.T) {
	all := numberedCountries(25)

	t.Run("full pages hold exactly page size records", func(t *testing.T) {
		for page := 1; page < TotalPages(len(all), PageSize); page++ {
			assert.Len(t, Paginate(all, page, PageSize), PageSize)
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		last := Paginate(all, 3, PageSize)
		require.Len(t, last, 5)
		assert.Equal(t, "Country 021", last[0].Name)
		assert.Equal(t, "Country 025", last[4].Name)
	})

	t.Run("page P shows offsets (P-1)*10 to min(F,P*10)-1", func(t *testing.T) {
		page := Paginate(all, 2, PageSize)
		assert.Equal(t, all[10:20], page)
	})

	t.Run("out of range pages are empty", func(t *testing.T) {
		assert.Empty(t, Paginate(all, 4, PageSize))
		assert.Empty(t, Paginate(all, 0, PageSize))
	})
}

func TestBuildListing(t *testing.T) {
	t.Run("few matches hide the pagination", func(t *testing.T) {
		l := BuildListing(sampleCountries(), "united", 1)
		assert.Equal(t, 3, l.Total)
		assert.Equal(t, 1, l.TotalPages)
		assert.Len(t, l.Items, 3)
		assert.False(t, l.ShowPagination)
		assert.False(t, l.Empty)
	})

	t.Run("more than one page shows the pagination", func(t *testing.T) {
		l := BuildListing(numberedCountries(11), "", 2)
		assert.True(t, l.ShowPagination)
		assert.Equal(t, 2, l.TotalPages)
		assert.Len(t, l.Items, 1)
		assert.Equal(t, []int{1, 2}, l.Pages())
		assert.True(t, l.HasPrev())
		assert.False(t, l.HasNext())
	})

	t.Run("exactly one full page hides the pagination", func(t *testing.T) {
		l := BuildListing(numberedCountries(10), "", 1)
		assert.False(t, l.ShowPagination)
	})

	t.Run("no results", func(t *testing.T) {
		l := BuildListing(sampleCountries(), "zz", 1)
		assert.True(t, l.Empty)
		assert.Equal(t, 0, l.TotalPages)
		assert.Empty(t, l.Items)
	})
}
