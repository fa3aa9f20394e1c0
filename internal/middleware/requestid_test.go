package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRequestID_Propagation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "valid uuid reused", incoming: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", reuse: true},
		{name: "garbage replaced", incoming: "not-a-uuid", reuse: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				v, _ := c.Get(RequestIDKey)
				seen = toString(v)
				c.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tc.incoming)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got != seen {
				t.Fatalf("header %q != context %q", got, seen)
			}
			if (got == tc.incoming) != tc.reuse {
				t.Fatalf("incoming=%q got=%q reuse=%v", tc.incoming, got, tc.reuse)
			}
		})
	}
}
