package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testDefaults returns a complete server-side default config so create
// requests only need a proposition.
func testDefaults() *config.DebateConfig {
	cfg := config.DefaultDebateConfig()
	cfg.Models.Pro = "gpt-4o"
	cfg.Models.Con = "gpt-4o"
	cfg.Models.Moderator = "gpt-4o-mini"
	return cfg
}

// testContext builds a gin context around a recorder for direct handler calls.
func testContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestListDebatesHandler_Validation(t *testing.T) {
	// We only test parameter validation (returns 400 before hitting the
	// service). Happy-path is covered by the service integration tests.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "invalid status value",
			query:  "status=bogus",
			errMsg: "invalid status",
		},
		{
			name:   "invalid mode value",
			query:  "mode=shouting_match",
			errMsg: "invalid mode",
		},
		{
			name:   "invalid created_after",
			query:  "created_after=not-a-date",
			errMsg: "invalid created_after",
		},
		{
			name:   "created_before wrong format (not RFC3339)",
			query:  "created_before=2026-01-01",
			errMsg: "invalid created_before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(httptest.NewRequest(http.MethodGet, "/api/v1/debates?"+tt.query, nil))

			s.listDebatesHandler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errMsg)
		})
	}
}

func TestSearchDebatesHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing q", query: ""},
		{name: "q too short", query: "q=ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(httptest.NewRequest(http.MethodGet, "/api/v1/debates/search?"+tt.query, nil))

			s.searchDebatesHandler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "at least 3 characters")
		})
	}
}

func TestCreateDebateHandler_Validation(t *testing.T) {
	// Validation errors surface before any store access, so a service without
	// a database client is enough.
	s := &Server{service: services.NewDebateService(nil, testDefaults())}

	t.Run("malformed JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/debates", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		c, w := testContext(req)

		s.createDebateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing proposition", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/debates", strings.NewReader(`{"context":"background only"}`))
		req.Header.Set("Content-Type", "application/json")
		c, w := testContext(req)

		s.createDebateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "proposition")
	})

	t.Run("invalid config override", func(t *testing.T) {
		body := `{"proposition":"AI art is art","config":{"brevity":9}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/debates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c, w := testContext(req)

		s.createDebateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "brevity")
	})
}
