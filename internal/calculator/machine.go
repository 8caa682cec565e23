package calculator

import (
	"context"
	"fmt"
	"time"

	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Form exposes submitted form fields. url.Values satisfies it.
type Form interface {
	Get(key string) string
}

// HandlerFunc produces the page for one route, mutating s first if needed.
// A non-nil error accompanies a page that reports the failure.
type HandlerFunc func(s *State, form Form) (Page, error)

// Machine owns the session state and the route table. The table is built
// once by NewMachine and never changes afterwards.
//
// Machine does no locking of its own: callers must serialize Dispatch.
type Machine struct {
	state         *State
	maxResultBits int
	routes        []Route
	table         map[Route]HandlerFunc
	operators     map[Route]Operator
}

// Option configures a Machine.
type Option func(*Machine)

// WithMaxResultBits bounds the bit length of exponent results. n <= 0
// removes the bound.
func WithMaxResultBits(n int) Option {
	return func(m *Machine) {
		m.maxResultBits = n
	}
}

// NewMachine registers a handler for every route against state.
func NewMachine(state *State, opts ...Option) *Machine {
	m := &Machine{
		state:         state,
		maxResultBits: DefaultMaxResultBits,
		table:         make(map[Route]HandlerFunc),
		operators:     make(map[Route]Operator),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.handle(RouteIndex, func(s *State, _ Form) (Page, error) {
		return Index(s), nil
	})
	for _, op := range Operators() {
		m.operators[op.Route()] = op
		m.handle(op.Route(), func(s *State, form Form) (Page, error) {
			return operate(s, op, form.Get("first"), form.Get("second"), m.maxResultBits)
		})
	}
	m.handle(RouteHistory, func(s *State, _ Form) (Page, error) {
		return History(s), nil
	})
	m.handle(RouteInvalid, func(s *State, _ Form) (Page, error) {
		return Invalid(s), nil
	})

	return m
}

func (m *Machine) handle(route Route, h HandlerFunc) {
	m.routes = append(m.routes, route)
	m.table[route] = h
}

// State returns the state handle the machine mutates.
func (m *Machine) State() *State {
	return m.state
}

// Routes lists the registered routes in registration order.
func (m *Machine) Routes() []Route {
	out := make([]Route, len(m.routes))
	copy(out, m.routes)
	return out
}

// Dispatch runs the handler registered for route. Each call gets its own
// span, metrics and a trace-correlated log entry.
func (m *Machine) Dispatch(ctx context.Context, route Route, form Form) (Page, error) {
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", route),
		trace.WithAttributes(
			attribute.String("calculator.route", route.String()),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	h, ok := m.table[route]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownRoute, route)
		observability.RecordError(ctx, span, logger, errorCounter, route.String(), errorKind(err), err)
		return Page{}, err
	}

	start := time.Now()
	page, err := h(m.state, form)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("route", route.String()))
	pageCounter.Add(ctx, 1, attrs)
	pageHistogram.Record(ctx, elapsed, attrs)
	historyGauge.Record(ctx, int64(len(m.state.AnswerHistory)))

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, route.String(), errorKind(err), err,
			attribute.String("kind", errorKind(err)),
		)
		return page, err
	}

	if op, isOp := m.operators[route]; isOp {
		opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op.String())))

		span.AddEvent("computation.complete", trace.WithAttributes(
			attribute.String("result", m.state.Result),
			attribute.Float64("duration_ms", elapsed),
		))
		span.SetAttributes(
			attribute.String("calculator.operand.first", form.Get("first")),
			attribute.String("calculator.operand.second", form.Get("second")),
			attribute.String("calculator.result", m.state.Result),
		)

		logger.Info("calculator operation completed",
			zap.String("operation", op.String()),
			zap.String("first", form.Get("first")),
			zap.String("second", form.Get("second")),
			zap.String("result", m.state.Result),
			zap.Int("history_len", len(m.state.AnswerHistory)),
			zap.String("request_id", requestID),
			zap.Float64("duration_ms", elapsed),
		)
	}

	span.SetStatus(codes.Ok, "")
	return page, nil
}
