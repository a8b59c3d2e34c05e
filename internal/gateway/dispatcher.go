package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"language_connect/internal/apperr"
	"language_connect/internal/http/middleware"
	"language_connect/internal/logger"
)

type (
	HandlerFunc  func(ctx context.Context, req *Request) (*Response, error)
	EventHandler func(ctx context.Context, ev Event) (Result, error)
)

// Limiter admits or rejects a request from ident.
type Limiter interface {
	Allow(ctx context.Context, ident string) (bool, error)
}

// APIHeaders are sent with every API response.
func APIHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-User-Id",
	}
}

type Dispatcher struct {
	name    string
	routes  Routes
	headers map[string]string
	limiter Limiter
	resolve func(Event) Action
}

type Option func(*Dispatcher)

func WithHeaders(h map[string]string) Option {
	return func(d *Dispatcher) { d.headers = h }
}

// WithLimiter enables rate limiting per dispatcher and source IP. A nil
// limiter is ignored.
func WithLimiter(l Limiter) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.limiter = l
		}
	}
}

// WithAction routes every request to a single action, for endpoints that
// do not take an action parameter.
func WithAction(a Action) Option {
	return func(d *Dispatcher) {
		d.resolve = func(Event) Action { return a }
	}
}

func NewDispatcher(name string, routes Routes, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		name:    name,
		routes:  routes,
		headers: APIHeaders(),
		resolve: func(ev Event) Action {
			return Action(ev.QueryStringParameters["action"])
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle serves one event. It never returns an error: failures become
// HTTP responses.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) (Result, error) {
	start := time.Now()
	method := strings.ToUpper(ev.HTTPMethod)
	if method == "" {
		method = http.MethodGet
	}

	if method == http.MethodOptions {
		res := d.result(http.StatusOK, "")
		middleware.ObserveRequest(d.name, "options", res.StatusCode, time.Since(start))
		return res, nil
	}

	action := d.resolve(ev)
	log := logger.With("handler", d.name, "action", string(action), "method", method, "request_id", ev.RequestContext.RequestID)
	ctx = logger.NewContext(ctx, log)

	res := d.serve(ctx, ev, method, action)
	elapsed := time.Since(start)
	label := string(action)
	if d.routes.lookup(action, method) == nil {
		label = "unknown"
	}
	middleware.ObserveRequest(d.name, label, res.StatusCode, elapsed)
	log.Info("request", "status", res.StatusCode, "duration_ms", elapsed.Milliseconds())
	return res, nil
}

func (d *Dispatcher) serve(ctx context.Context, ev Event, method string, action Action) Result {
	h := d.routes.lookup(action, method)
	if h == nil {
		return d.fail(ctx, apperr.NotFound("Action not found"))
	}

	if d.limiter != nil {
		// each dispatcher gets its own budget per client
		ok, err := d.limiter.Allow(ctx, d.name+":"+sourceIP(ev))
		if err != nil {
			logger.WithContext(ctx).Warn("rate limiter unavailable", "error", err)
		}
		if !ok {
			middleware.RLBlocked.WithLabelValues(d.name).Inc()
			return d.fail(ctx, apperr.TooManyRequests())
		}
	}

	resp, err := d.call(ctx, h, &Request{Method: method, Action: action, Event: ev})
	if err != nil {
		return d.fail(ctx, err)
	}

	body, err := encode(resp.Body)
	if err != nil {
		return d.fail(ctx, apperr.Internal(fmt.Errorf("encode response: %w", err)))
	}
	return d.result(resp.Status, body)
}

func (d *Dispatcher) call(ctx context.Context, h HandlerFunc, req *Request) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperr.Internal(fmt.Errorf("panic: %v", r))
		}
	}()
	resp, err = h(ctx, req)
	if err == nil && resp == nil {
		err = apperr.Internal(fmt.Errorf("handler returned no response"))
	}
	return resp, err
}

func (d *Dispatcher) fail(ctx context.Context, err error) Result {
	e := apperr.From(err)
	log := logger.WithContext(ctx)
	if e.Kind == apperr.KindInternal {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "kind", e.Kind.String(), "error", err)
	}

	body, encErr := encode(e.Body())
	if encErr != nil {
		body = `{"error":"Internal server error"}`
	}
	return d.result(e.Kind.Status(), body)
}

func (d *Dispatcher) result(status int, body string) Result {
	headers := make(map[string]string, len(d.headers))
	for k, v := range d.headers {
		headers[k] = v
	}
	return Result{StatusCode: status, Headers: headers, Body: body}
}

func sourceIP(ev Event) string {
	if ip := ev.RequestContext.Identity.SourceIP; ip != "" {
		return ip
	}
	for k, v := range ev.Headers {
		if strings.EqualFold(k, "X-Forwarded-For") {
			return strings.TrimSpace(strings.Split(v, ",")[0])
		}
	}
	return "unknown"
}
