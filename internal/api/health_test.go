package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okPing := func() error { return nil }
	badPing := func() error { return assertErr{} }

	cases := []struct {
		name        string
		ping        func() error
		path        string
		want        int
		wantHistory string
	}{
		{name: "healthz ok", ping: nil, path: "/healthz", want: 200},
		{name: "readyz without db", ping: nil, path: "/readyz", want: 200, wantHistory: "disabled"},
		{name: "readyz ok", ping: okPing, path: "/readyz", want: 200, wantHistory: "enabled"},
		{name: "readyz degraded", ping: badPing, path: "/readyz", want: 503, wantHistory: "unreachable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if tc.wantHistory != "" {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["history"] != tc.wantHistory {
					t.Fatalf("body=%s err=%v", w.Body.String(), err)
				}
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
