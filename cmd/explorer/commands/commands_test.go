package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/models"
)

func catalog(n int) []models.Country {
	out := make([]models.Country, n)
	for i := range out {
		out[i] = models.Country{
			Code:      fmt.Sprintf("C%02d", i+1),
			Name:      fmt.Sprintf("Country %02d", i+1),
			Emoji:     "🏳",
			Continent: models.Continent{Name: "Europe"},
		}
	}
	return out
}

type result struct {
	out, err string
	runErr   error
}

func run(t *testing.T, repo countries.Repository, stdin string, args ...string) result {
	t.Helper()

	var opts []Option
	if repo != nil {
		opts = append(opts, WithRepository(repo))
	}
	return execute(NewRootCommand(opts...), stdin, args...)
}

func execute(root *cobra.Command, stdin string, args ...string) result {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return result{out: out.String(), err: errOut.String(), runErr: err}
}

func mockRepo(list []models.Country, err error) *countries.MockRepository {
	repo := &countries.MockRepository{}
	repo.On("FetchAll", mock.Anything).Return(list, err).Once()
	return repo
}

func TestCountriesCommand(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		res := run(t, mockRepo(catalog(25), nil), "", "countries")

		require.NoError(t, res.runErr)
		assert.Contains(t, res.out, "Country 01 (C01)")
		assert.Contains(t, res.out, "Country 10 (C10)")
		assert.NotContains(t, res.out, "Country 11")
		assert.Contains(t, res.out, "Found 25 countries")
		assert.Contains(t, res.out, "Page 1 of 3")
	})

	t.Run("search and page", func(t *testing.T) {
		res := run(t, mockRepo(catalog(25), nil), "", "countries", "--search", "country 2", "--page", "9")

		require.NoError(t, res.runErr)
		assert.Contains(t, res.out, "Country 20")
		assert.Contains(t, res.out, "Country 25")
		assert.Contains(t, res.out, "Found 6 countries")
		assert.NotContains(t, res.out, "Page ")
	})

	t.Run("no match", func(t *testing.T) {
		res := run(t, mockRepo(catalog(3), nil), "", "countries", "-s", "atlantis")

		require.NoError(t, res.runErr)
		assert.Contains(t, res.out, `No countries found matching "atlantis"`)
	})

	t.Run("upstream failure", func(t *testing.T) {
		res := run(t, mockRepo(nil, errors.New("connection refused")), "", "countries")

		require.Error(t, res.runErr)
		assert.ErrorIs(t, res.runErr, models.ErrUpstreamUnavailable)
	})
}

func TestCountriesCommand_GraphQLEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"countries":[
			{"code":"JP","name":"Japan","emoji":"🇯🇵","capital":"Tokyo","currency":"JPY","continent":{"name":"Asia"}}
		]}}`))
	}))
	defer srv.Close()

	res := run(t, nil, "", "--endpoint", srv.URL, "countries")

	require.NoError(t, res.runErr)
	assert.Contains(t, res.out, "🇯🇵 Japan (JP)  Capital: Tokyo  Currency: JPY  Continent: Asia")
}

func TestBrowseCommand(t *testing.T) {
	res := run(t, mockRepo(catalog(25), nil), "n\nn\nn\n/country 2\n/\n2\nq\n", "browse")

	require.NoError(t, res.runErr)
	pages := strings.Split(res.out, "]> ")
	require.Len(t, pages, 8)
	assert.Contains(t, pages[1], "Page 2 of 3")
	assert.Contains(t, pages[2], "Page 3 of 3")
	// next on the last page stays there
	assert.Contains(t, pages[3], "Page 3 of 3")
	assert.Contains(t, pages[4], "Country 25")
	assert.NotContains(t, pages[4], "Page ")
	assert.Contains(t, pages[5], "Page 1 of 3")
	assert.Contains(t, pages[6], "Page 2 of 3")
}

func TestApply(t *testing.T) {
	pager := countries.NewPager()
	pager.SetTotalPages(3)

	assert.False(t, apply(pager, "3"))
	assert.Equal(t, 3, pager.Page())
	assert.False(t, apply(pager, "/abc"))
	assert.Equal(t, "abc", pager.Search())
	assert.Equal(t, 1, pager.Page())
	assert.False(t, apply(pager, "nonsense"))
	assert.True(t, apply(pager, "q"))
}

func TestBookCommand(t *testing.T) {
	t.Run("confirmed after the submit delay", func(t *testing.T) {
		clk := clock.NewMock()
		root := NewRootCommand(WithClock(clk))

		finished := make(chan result, 1)
		go func() {
			finished <- execute(root, "", "book",
				"--destination", "Japan",
				"--first-name", "Ada",
				"--last-name", "Lovelace",
				"--email", "ada@example.com",
				"--travelers", "2",
				"--departure", "2099-01-10",
				"--return", "2099-01-15",
			)
		}()

		var res result
		require.Eventually(t, func() bool {
			clk.Add(500 * time.Millisecond)
			select {
			case res = <-finished:
				return true
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)

		require.NoError(t, res.runErr)
		assert.Contains(t, res.out, "Booking...")
		assert.Contains(t, res.out, "Booking submitted for Japan!")
		assert.Contains(t, res.out, "Reference: ")
	})

	t.Run("invalid", func(t *testing.T) {
		res := run(t, nil, "", "book",
			"--destination", "Japan",
			"--email", "not-an-email",
			"--travelers", "11",
			"--departure", "2099-01-10",
			"--return", "2099-01-05",
		)

		require.Error(t, res.runErr)
		assert.NotContains(t, res.out, "Booking...")
		assert.Contains(t, res.err, "first_name: First name is required")
		assert.Contains(t, res.err, "email: Invalid email address")
		assert.Contains(t, res.err, "travelers:")
		assert.Contains(t, res.err, "return_date:")
	})

	t.Run("bad date", func(t *testing.T) {
		res := run(t, nil, "", "book", "--destination", "Japan", "--departure", "tomorrow")
		assert.Error(t, res.runErr)
	})
}
