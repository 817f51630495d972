package deps

import (
	"net/http"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"

	"github.com/joefazee/travel-explorer/internal/logger"
)

func TestNewContainer_Defaults(t *testing.T) {
	c := NewContainer()

	assert.Equal(t, http.DefaultClient, c.HTTPClient)
	assert.NotNil(t, c.Clock)
	assert.NotNil(t, c.Sanitizer)
	assert.IsType(t, &logger.NullLogger{}, c.Logger)
	assert.NotNil(t, c.Metrics)
	assert.NotNil(t, c.CountryCache)
	assert.NotNil(t, c.BookingCache)
	assert.NotNil(t, c.SessionCache)
	assert.Nil(t, c.TokenMaker)
}

func TestContainer_Close(t *testing.T) {
	c := NewContainer()

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestNewContainer_Options(t *testing.T) {
	mock := clock.NewMock()
	client := &http.Client{Timeout: time.Second}

	c := NewContainer(WithClock(mock), WithHTTPClient(client))

	assert.Same(t, mock, c.Clock)
	assert.Same(t, client, c.HTTPClient)
}

func TestContainer_Registry(t *testing.T) {
	c := NewContainer()

	c.RegisterService("svc", 42)
	c.RegisterRepository("repo", "r")

	assert.Equal(t, 42, c.GetService("svc"))
	assert.Equal(t, "r", c.GetRepository("repo"))
	assert.Nil(t, c.GetService("missing"))
}
