package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/testutil"
	"go-chi-calculator/internal/web"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *calculator.State) {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	state := calculator.NewState()
	host := web.NewHost(calculator.NewMachine(state))
	return NewRouter(host), state
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatal("expected default Go collector metrics in /metrics output")
	}
}

func TestNewRouterHomePageSetsRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	if ct := w.Result().Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Welcome to Colin&#39;s Calculator!") {
		t.Fatalf("expected welcome text in body, got %q", w.Body.String())
	}
}

func TestNewRouterAddThenHistory(t *testing.T) {
	router, state := newTestRouter(t)

	req := testutil.NewFormRequest("/add_page", url.Values{"first": {"4"}, "second": {"5"}})
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), "The answer is: 9") {
		t.Fatalf("expected answer in body, got %q", w.Body.String())
	}

	req = testutil.NewFormRequest("/get_history", url.Values{})
	w = testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), "Your answer history is: 9, ") {
		t.Fatalf("expected history in body, got %q", w.Body.String())
	}

	if state.Result != "9" || len(state.AnswerHistory) != 1 {
		t.Fatalf("expected result 9 with one history entry, got %q %v", state.Result, state.AnswerHistory)
	}
}

func TestNewRouterInvalidOperandRendersErrorPage(t *testing.T) {
	router, state := newTestRouter(t)

	req := testutil.NewFormRequest("/add_page", url.Values{"first": {"number"}, "second": {"2"}})
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), "Invalid Input! You may only input numbers. Try Again.") {
		t.Fatalf("expected invalid input message, got %q", w.Body.String())
	}
	if state.ValidInput {
		t.Fatal("expected ValidInput to be cleared")
	}
	if len(state.AnswerHistory) != 0 {
		t.Fatalf("expected empty history, got %v", state.AnswerHistory)
	}
}

func TestNewRouterUnknownPathIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/sqrt_page", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}
