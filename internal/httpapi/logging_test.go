package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("?log=1 override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	SetDefaultRequestLogLevel("off")
	t.Cleanup(func() { SetDefaultRequestLogLevel("info") })
	r = httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r); got != LevelOff {
		t.Fatalf("default level: %v", got)
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })
	return &buf
}

func TestRequestLogger(t *testing.T) {
	buf := captureLogs(t)
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/estimate?log=debug&bhk=2", nil))
	out := buf.String()
	if !strings.Contains(out, `"status":202`) || !strings.Contains(out, `"level":"debug"`) || !strings.Contains(out, "bhk=2") {
		t.Fatalf("debug line: %s", out)
	}

	buf.Reset()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/estimate?log=off", nil))
	if buf.Len() != 0 {
		t.Fatalf("expected no log at level off, got %s", buf.String())
	}
}

func TestRequestLogger_ErrorsAlwaysLogged(t *testing.T) {
	buf := captureLogs(t)
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	r := httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	h.ServeHTTP(httptest.NewRecorder(), r)
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error line, got %s", buf.String())
	}

	buf.Reset()
	ok := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ok.ServeHTTP(httptest.NewRecorder(), r)
	if buf.Len() != 0 {
		t.Fatalf("2xx at level error should not log: %s", buf.String())
	}
}
