package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d", want, rr.Code)
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// LogoServer serves PNG bodies for /<code>.png and counts requests.
// Codes listed in missing get a 404.
type LogoServer struct {
	*httptest.Server
	Requests atomic.Int32
}

// NewLogoServer starts a logo CDN double that is closed with the test.
func NewLogoServer(t *testing.T, missing ...string) *LogoServer {
	t.Helper()
	body := PNG(200, 100)
	ls := &LogoServer{}
	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.Requests.Add(1)
		code := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".png")
		for _, m := range missing {
			if strings.EqualFold(m, code) {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(ls.Close)
	return ls
}
