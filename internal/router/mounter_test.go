package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/joefazee/travel-explorer/internal/deps"
)

func TestMounter_MountsUnderPrefixes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewMounter(deps.NewContainer())

	var seen *deps.Container
	m.API(engine).Mount(func(r *gin.RouterGroup, c *deps.Container) {
		seen = c
		r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
	})
	m.Pages(engine).Group("/book").Mount(func(r *gin.RouterGroup, _ *deps.Container) {
		r.GET("/:code", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.Param("code")) })
	})

	assert.NotNil(t, seen)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/book/FR", nil))
	assert.Equal(t, "FR", w.Body.String())
}

func TestRouteGroup_Use(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewMounter(deps.NewContainer())

	m.API(engine).
		Use(func(c *gin.Context) { c.Header("X-Test", "1"); c.Next() }).
		Mount(func(r *gin.RouterGroup, _ *deps.Container) {
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Test"))
}
