package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/packetery/backend/docs"
	"github.com/packetery/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.Prefix())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.Prefix())
}

func TestRouter_Setup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test").
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.Register(group)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouter_UseOnlyWrapsAPI(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	})
	r.Register(NewDomainGroup("test", "/test").
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") }))
	r.Setup()
	MountHealth(engine, r, handler.NewHealthHandler(okPinger{}, nil))

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/v1/test/ping").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/health").Code)
}

type okPinger struct{}

func (okPinger) Ping() error { return nil }

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("carriers", "/carriers")
		assert.Equal(t, "carriers", g.Name())
		assert.Equal(t, "/carriers", g.Prefix())
	})

	t.Run("methods", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		NewDomainGroup("test", "/test").
			GET("/items", ok).
			POST("/items", ok).
			PUT("/items/:id", ok).
			DELETE("/items/:id", ok).
			RegisterRoutes(engine.Group("/api/v1"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/v1/test/items"},
			{http.MethodPost, "/api/v1/test/items"},
			{http.MethodPut, "/api/v1/test/items/1"},
			{http.MethodDelete, "/api/v1/test/items/1"},
		} {
			assert.Equal(t, http.StatusOK, serve(engine, tc.method, tc.path).Code, tc.method+" "+tc.path)
		}
	})

	t.Run("group middleware and subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("parent", "/parent").Use(func(c *gin.Context) {
			c.Header("X-Group", "parent")
			c.Next()
		})
		g.Group("child", "/child").GET("/leaf", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/parent/child/leaf")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "parent", w.Header().Get("X-Group"))
	})
}

func TestHandlers_Mount(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	Handlers{
		Settings: handler.NewSettingsHandler(nil),
		Carriers: handler.NewCarrierHandler(nil, nil),
		Orders:   handler.NewOrderHandler(nil, nil, nil),
		Labels:   handler.NewLabelHandler(nil),
		Flash:    handler.NewFlashHandler(nil),
		Logs:     handler.NewLogHandler(nil),
		Rates:    handler.NewRateHandler(nil),
	}.Mount(r)
	require.NotPanics(t, r.Setup)

	registered := map[string]bool{}
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/v1/settings",
		"PUT /api/v1/settings",
		"GET /api/v1/settings/label-formats",
		"GET /api/v1/carriers",
		"GET /api/v1/carriers/countries",
		"GET /api/v1/carriers/:id",
		"POST /api/v1/carriers/sync",
		"GET /api/v1/carriers/sync/status",
		"GET /api/v1/orders/columns",
		"POST /api/v1/orders/submit",
		"POST /api/v1/orders/handover",
		"GET /api/v1/orders/:id/shipment",
		"PUT /api/v1/orders/:id/shipment",
		"PUT /api/v1/orders/:id/pickup-point",
		"POST /api/v1/labels/selection",
		"GET /api/v1/labels/offsets",
		"POST /api/v1/labels/print",
		"GET /api/v1/flash",
		"GET /api/v1/logs",
		"POST /api/v1/shipping/rates",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestMountSwagger(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	Handlers{
		Settings: handler.NewSettingsHandler(nil),
		Carriers: handler.NewCarrierHandler(nil, nil),
		Orders:   handler.NewOrderHandler(nil, nil, nil),
		Labels:   handler.NewLabelHandler(nil),
		Flash:    handler.NewFlashHandler(nil),
		Logs:     handler.NewLogHandler(nil),
		Rates:    handler.NewRateHandler(nil),
	}.Mount(r)
	r.Setup()
	MountSwagger(engine)

	w := serve(engine, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	t.Run("every API route is documented", func(t *testing.T) {
		for _, route := range engine.Routes() {
			if !strings.HasPrefix(route.Path, r.Prefix()+"/") {
				continue
			}
			path := strings.TrimPrefix(route.Path, r.Prefix())
			path = strings.ReplaceAll(path, ":id", "{id}")
			_, ok := doc.Paths[path][strings.ToLower(route.Method)]
			assert.True(t, ok, "%s %s has no documentation", route.Method, path)
		}
	})
}
