package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func okCheck() (interface{}, error) {
	return map[string]string{"status": "selected", "account": "a1"}, nil
}

func TestHandleHealthReady(t *testing.T) {
	svr := httptest.NewServer(NewRouter(okCheck))
	defer svr.Close()

	for _, path := range []string{"/", "/anything", "/deep/path"} {
		res, err := svr.Client().Get(svr.URL + path)
		if err != nil {
			t.Fatal(err)
		}

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatal(err)
		}

		if res.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "text/html" {
			t.Errorf("%s: expected text/html, got %s", path, ct)
		}
		if string(body) != "Bot is alive!" {
			t.Errorf("%s: unexpected body %q", path, body)
		}
	}

	svr.Client().CloseIdleConnections()
}

func TestLiveness(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Liveness(okCheck).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if got := rec.Body.String(); got == "" {
			t.Error("expected a JSON body")
		}
	})

	t.Run("failing check", func(t *testing.T) {
		rec := httptest.NewRecorder()
		check := func() (interface{}, error) { return nil, fmt.Errorf("store unavailable") }
		Liveness(check).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", rec.Code)
		}
	})
}
