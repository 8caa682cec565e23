// Package web hosts the calculator pages over HTTP: it binds every route of
// a calculator.Machine to a chi router, feeds submitted form fields to the
// machine and renders the returned page as HTML.
package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
)

// Host serializes access to the machine's state: one dispatch runs at a
// time.
type Host struct {
	mu          sync.Mutex
	machine     *calculator.Machine
	imagePrefix string
	imageDir    string
}

// Option configures a Host.
type Option func(*Host)

// WithImagePrefix sets the URL prefix images are served under.
func WithImagePrefix(prefix string) Option {
	return func(h *Host) {
		h.imagePrefix = prefix
	}
}

// WithImageDir serves image files from dir. Without it no image route is
// registered.
func WithImageDir(dir string) Option {
	return func(h *Host) {
		h.imageDir = dir
	}
}

func NewHost(m *calculator.Machine, opts ...Option) *Host {
	h := &Host{
		machine:     m,
		imagePrefix: "/images",
	}
	for _, opt := range opts {
		opt(h)
	}
	h.imagePrefix = "/" + strings.Trim(h.imagePrefix, "/")
	return h
}

// RegisterRoutes mounts GET and POST handlers for every machine route, plus
// the image file server when an image directory is configured.
func (h *Host) RegisterRoutes(r chi.Router) {
	for _, route := range h.machine.Routes() {
		handler := h.pageHandler(route)
		r.Get(route.Path(), handler)
		r.Post(route.Path(), handler)
	}

	if h.imageDir != "" {
		files := http.StripPrefix(h.imagePrefix, http.FileServer(http.Dir(h.imageDir)))
		r.Handle(h.imagePrefix+"/*", files)
	}
}

// RegisterMetrics exposes the history length as a Prometheus gauge.
func (h *Host) RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "calculator_history_entries",
			Help: "Number of answers recorded in the calculator history.",
		},
		func() float64 { return float64(h.HistoryLen()) },
	))
}

// HistoryLen returns the number of recorded answers.
func (h *Host) HistoryLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.machine.State().AnswerHistory)
}

func (h *Host) pageHandler(route calculator.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := observability.LoggerWithTrace(ctx)

		if err := r.ParseForm(); err != nil {
			logger.Warn("malformed form body",
				zap.String("route", route.String()),
				zap.Error(err),
				zap.String("request_id", observability.RequestIDFromContext(ctx)),
			)
			handlers.WriteError(w, http.StatusBadRequest, "malformed form body")
			return
		}

		page, err := h.dispatch(ctx, route, r.Form)
		if errors.Is(err, calculator.ErrUnknownRoute) {
			handlers.WriteError(w, http.StatusNotFound, "unknown page")
			return
		}

		var buf bytes.Buffer
		if err := PageComponent(page, h.imagePrefix).Render(ctx, &buf); err != nil {
			logger.Error("rendering page",
				zap.String("route", route.String()),
				zap.Error(err),
				zap.String("request_id", observability.RequestIDFromContext(ctx)),
			)
			handlers.WriteError(w, http.StatusInternalServerError, "rendering page failed")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func (h *Host) dispatch(ctx context.Context, route calculator.Route, form calculator.Form) (calculator.Page, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.machine.Dispatch(ctx, route, form)
}
